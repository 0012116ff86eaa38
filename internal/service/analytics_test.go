package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"site_functions/internal/domain"
	"site_functions/internal/service/mocks"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	visits    *mocks.MockVisitStore
	txManager *mocks.MockTransactionManager

	service *AnalyticsService
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.visits = mocks.NewMockVisitStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewAnalyticsService(s.visits, s.txManager, logger)
}

func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *AnalyticsServiceTestSuite) TestRecordVisit_Upserts() {
	ctx := context.Background()
	visit := &domain.PageVisit{
		PagePath:           "/articles/1",
		VisitorFingerprint: "fp_abc",
		VisitorIP:          "10.0.0.1",
		UserAgent:          "Mozilla/5.0",
	}

	s.expectTransaction(ctx)
	s.visits.EXPECT().Upsert(ctx, visit).Return(nil)

	recorded, err := s.service.RecordVisit(ctx, visit, "admin_me@example.com")
	s.NoError(err)
	s.True(recorded)
}

func (s *AnalyticsServiceTestSuite) TestRecordVisit_SkipsAdmin() {
	ctx := context.Background()
	visit := &domain.PageVisit{PagePath: "/", VisitorFingerprint: "admin_me@example.com"}

	recorded, err := s.service.RecordVisit(ctx, visit, "admin_me@example.com")
	s.NoError(err)
	s.False(recorded)
}

func (s *AnalyticsServiceTestSuite) TestRecordVisit_SkipsEmptyFingerprint() {
	ctx := context.Background()

	recorded, err := s.service.RecordVisit(ctx, &domain.PageVisit{PagePath: "/"}, "")
	s.NoError(err)
	s.False(recorded)
}

func (s *AnalyticsServiceTestSuite) TestRecordVisit_StoreError() {
	ctx := context.Background()
	visit := &domain.PageVisit{PagePath: "/", VisitorFingerprint: "fp_abc"}

	s.expectTransaction(ctx)
	s.visits.EXPECT().Upsert(ctx, visit).Return(errors.New("connection reset"))

	recorded, err := s.service.RecordVisit(ctx, visit, "")
	s.Error(err)
	s.Contains(err.Error(), "connection reset")
	s.False(recorded)
}

func (s *AnalyticsServiceTestSuite) TestPageUniqueVisitors() {
	ctx := context.Background()
	s.visits.EXPECT().CountUniqueVisitors(ctx, "/about", "admin_x").Return(int64(5), nil)

	count, err := s.service.PageUniqueVisitors(ctx, "/about", "admin_x")
	s.NoError(err)
	s.Equal(int64(5), count)
}

func (s *AnalyticsServiceTestSuite) TestSiteStats() {
	ctx := context.Background()
	now := time.Now()
	stats := []domain.PageStats{
		{PagePath: "/b", UniqueVisitors: 3, LastVisit: &now},
		{PagePath: "/a", UniqueVisitors: 1, LastVisit: &now},
	}
	s.visits.EXPECT().Stats(ctx, "admin_x").Return(stats, nil)

	got, err := s.service.SiteStats(ctx, "admin_x")
	s.NoError(err)
	s.Equal(stats, got)
}

func (s *AnalyticsServiceTestSuite) TestSiteStats_Error() {
	ctx := context.Background()
	s.visits.EXPECT().Stats(ctx, "").Return(nil, errors.New("boom"))

	_, err := s.service.SiteStats(ctx, "")
	s.Error(err)
}

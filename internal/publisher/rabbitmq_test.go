package publisher

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site_functions/internal/domain"
)

func TestDialTimeout(t *testing.T) {
	assert.Equal(t, defaultDialTimeout, dialTimeout(context.Background(), 0))
	assert.Equal(t, 5*time.Second, dialTimeout(context.Background(), 5*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	got := dialTimeout(ctx, 5*time.Second)
	assert.LessOrEqual(t, got, 500*time.Millisecond)
	assert.Greater(t, got, time.Duration(0))

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()
	assert.Equal(t, time.Millisecond, dialTimeout(expired, 5*time.Second))
}

func TestRoutingKeys(t *testing.T) {
	assert.Equal(t, "engagement.like.created", eventRoutingKey("engagement", domain.EventLikeCreated))
	assert.Equal(t, "engagement.comment.deleted", eventRoutingKey("engagement", domain.EventCommentDeleted))
	assert.Equal(t, "engagement.#", bindingKey("engagement"))
}

func TestNewRabbitMQ_SilentBrokerTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// accept connections and never answer the AMQP handshake
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = NewRabbitMQ(ctx, Config{
		URL:        "amqp://guest:guest@" + ln.Addr().String() + "/",
		Exchange:   "site_engagement",
		RoutingKey: "engagement",
		QueueName:  "engagement_events",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

package domain

import "time"

// PageVisit is unique per (PagePath, VisitorFingerprint); repeat visits only move VisitedAt.
type PageVisit struct {
	PagePath           string    `db:"page_path"`
	VisitorFingerprint string    `db:"visitor_fingerprint"`
	VisitorIP          string    `db:"visitor_ip"`
	UserAgent          string    `db:"user_agent"`
	VisitedAt          time.Time `db:"visited_at"`
}

type PageStats struct {
	PagePath       string     `db:"page_path" json:"page_path"`
	UniqueVisitors int64      `db:"unique_visitors" json:"unique_visitors"`
	LastVisit      *time.Time `db:"last_visit" json:"last_visit"`
}

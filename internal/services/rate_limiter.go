package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	rateLimitMaxRequests = 10
	rateLimitWindow      = time.Hour
)

type RateLimiterInterface interface {
	CheckAndRecord(ctx context.Context, userID string) error
}

// RateLimiter enforces a rolling one-hour window of at most ten generation
// requests per user, backed by one durable record per user. The record is
// read-modify-write without cross-instance locking: two concurrent requests
// from the same user can both pass on a stale read. That over-admission is
// bounded and accepted.
type RateLimiter struct {
	repo repositories.RateLimitRepository
	now  func() time.Time
}

func NewRateLimiter(repo repositories.RateLimitRepository) *RateLimiter {
	return &RateLimiter{
		repo: repo,
		now:  time.Now,
	}
}

func (r *RateLimiter) CheckAndRecord(ctx context.Context, userID string) error {
	record, err := r.repo.GetRecord(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	nowMs := r.now().UnixMilli()
	cutoff := nowMs - rateLimitWindow.Milliseconds()

	var timestamps []int64
	if record != nil && len(record.Requests) > 0 {
		if err := json.Unmarshal(record.Requests, &timestamps); err != nil {
			// A corrupt record should never lock a user out.
			log.Printf("Resetting unreadable rate-limit record for user %s: %v", userID, err)
			timestamps = nil
		}
	}

	recent := timestamps[:0]
	for _, ts := range timestamps {
		if ts > cutoff {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rateLimitMaxRequests {
		return utils.ErrRateLimitExceeded
	}

	recent = append(recent, nowMs)
	payload, err := json.Marshal(recent)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if record == nil {
		record = &db_models.RateLimitRecord{UserID: userID}
	}
	record.Requests = payload

	if err := r.repo.SaveRecord(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type fakeRateLimitRepo struct {
	records map[string]*db_models.RateLimitRecord
	getErr  error
	saveErr error
	saves   int
}

func newFakeRateLimitRepo() *fakeRateLimitRepo {
	return &fakeRateLimitRepo{records: make(map[string]*db_models.RateLimitRecord)}
}

func (f *fakeRateLimitRepo) GetRecord(_ context.Context, userID string) (*db_models.RateLimitRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records[userID], nil
}

func (f *fakeRateLimitRepo) SaveRecord(_ context.Context, record *db_models.RateLimitRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.records[record.UserID] = record
	return nil
}

func (f *fakeRateLimitRepo) timestamps(t *testing.T, userID string) []int64 {
	t.Helper()
	record, ok := f.records[userID]
	if !ok {
		return nil
	}
	var out []int64
	if err := json.Unmarshal(record.Requests, &out); err != nil {
		t.Fatalf("unreadable record for %s: %v", userID, err)
	}
	return out
}

func TestRateLimiterAllowsUpToTenPerHour(t *testing.T) {
	repo := newFakeRateLimitRepo()
	limiter := NewRateLimiter(repo)
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	for i := 0; i < 10; i++ {
		if err := limiter.CheckAndRecord(context.Background(), "user-1"); err != nil {
			t.Fatalf("request %d: unexpected error %v", i+1, err)
		}
	}

	err := limiter.CheckAndRecord(context.Background(), "user-1")
	if !errors.Is(err, utils.ErrRateLimitExceeded) {
		t.Fatalf("11th request: got %v, want ErrRateLimitExceeded", err)
	}

	if got := len(repo.timestamps(t, "user-1")); got != 10 {
		t.Fatalf("recorded %d timestamps, want 10", got)
	}
}

func TestRateLimiterRejectionRecordsNothing(t *testing.T) {
	repo := newFakeRateLimitRepo()
	limiter := NewRateLimiter(repo)
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	for i := 0; i < 10; i++ {
		if err := limiter.CheckAndRecord(context.Background(), "user-1"); err != nil {
			t.Fatalf("request %d: unexpected error %v", i+1, err)
		}
	}
	savesBefore := repo.saves

	for i := 0; i < 3; i++ {
		if err := limiter.CheckAndRecord(context.Background(), "user-1"); !errors.Is(err, utils.ErrRateLimitExceeded) {
			t.Fatalf("got %v, want ErrRateLimitExceeded", err)
		}
	}

	if repo.saves != savesBefore {
		t.Fatalf("rejected requests wrote to the store (%d saves, want %d)", repo.saves, savesBefore)
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	repo := newFakeRateLimitRepo()
	limiter := NewRateLimiter(repo)

	base := time.Unix(1_700_000_000, 0)
	limiter.now = func() time.Time { return base }

	for i := 0; i < 10; i++ {
		if err := limiter.CheckAndRecord(context.Background(), "user-1"); err != nil {
			t.Fatalf("request %d: unexpected error %v", i+1, err)
		}
	}
	if err := limiter.CheckAndRecord(context.Background(), "user-1"); !errors.Is(err, utils.ErrRateLimitExceeded) {
		t.Fatalf("got %v, want ErrRateLimitExceeded", err)
	}

	// 61 minutes later every earlier timestamp has aged out.
	limiter.now = func() time.Time { return base.Add(61 * time.Minute) }

	if err := limiter.CheckAndRecord(context.Background(), "user-1"); err != nil {
		t.Fatalf("after window slid: unexpected error %v", err)
	}
	if got := len(repo.timestamps(t, "user-1")); got != 1 {
		t.Fatalf("recorded %d timestamps after pruning, want 1", got)
	}
}

func TestRateLimiterUsersAreIndependent(t *testing.T) {
	repo := newFakeRateLimitRepo()
	limiter := NewRateLimiter(repo)
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	for i := 0; i < 10; i++ {
		if err := limiter.CheckAndRecord(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if err := limiter.CheckAndRecord(context.Background(), "user-2"); err != nil {
		t.Fatalf("second user should be unaffected, got %v", err)
	}
}

func TestRateLimiterResetsCorruptRecord(t *testing.T) {
	repo := newFakeRateLimitRepo()
	repo.records["user-1"] = &db_models.RateLimitRecord{
		UserID:   "user-1",
		Requests: []byte(`{"not":"an array"}`),
	}
	limiter := NewRateLimiter(repo)
	limiter.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	if err := limiter.CheckAndRecord(context.Background(), "user-1"); err != nil {
		t.Fatalf("corrupt record should not lock the user out, got %v", err)
	}
	if got := len(repo.timestamps(t, "user-1")); got != 1 {
		t.Fatalf("recorded %d timestamps, want 1", got)
	}
}

func TestRateLimiterStoreFailure(t *testing.T) {
	repo := newFakeRateLimitRepo()
	repo.getErr = errors.New("connection refused")
	limiter := NewRateLimiter(repo)

	if err := limiter.CheckAndRecord(context.Background(), "user-1"); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("got %v, want ErrDatabaseError", err)
	}
}

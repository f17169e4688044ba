package syncer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"sellerops/internal/api/domain/account"
	"sellerops/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type SchedulerConfig struct {
	Tick        time.Duration
	Concurrency int
	JobTimeout  time.Duration
	// FailureBackoff is the pause after the first failed sync of an account; it
	// doubles per consecutive failure up to MaxFailureBackoff.
	FailureBackoff    time.Duration
	MaxFailureBackoff time.Duration
}

// Scheduler periodically syncs the accounts whose sync interval has elapsed.
// Accounts that keep failing are held back with an exponential backoff, since
// last_synced_at only moves on success and they would otherwise be due on every tick.
type Scheduler struct {
	syncer  AccountSyncer
	tracker SyncTracker
	cfg     SchedulerConfig
	now     func() time.Time

	mu       sync.Mutex
	failures map[uuid.UUID]failureState
}

type failureState struct {
	count int
	until time.Time
}

func NewScheduler(syncer AccountSyncer, tracker SyncTracker, cfg SchedulerConfig) *Scheduler {
	if cfg.Tick <= 0 {
		cfg.Tick = time.Minute
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}
	if cfg.FailureBackoff <= 0 {
		cfg.FailureBackoff = 5 * time.Minute
	}
	if cfg.MaxFailureBackoff < cfg.FailureBackoff {
		cfg.MaxFailureBackoff = max(6*time.Hour, cfg.FailureBackoff)
	}
	return &Scheduler{
		syncer:   syncer,
		tracker:  tracker,
		cfg:      cfg,
		now:      time.Now,
		failures: make(map[uuid.UUID]failureState),
	}
}

// Run ticks until ctx is cancelled. The first round starts immediately.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Sync scheduler started",
		slog.Duration("tick", s.cfg.Tick),
		slog.Int("concurrency", s.cfg.Concurrency))

	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		s.RunOnce(ctx)

		select {
		case <-ctx.Done():
			slog.Info("Sync scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce syncs every due account, at most Concurrency at a time, and returns how
// many syncs succeeded.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	now := s.now()
	due, err := s.tracker.DueForSync(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list accounts due for sync", slog.Any("error", err))
		return 0
	}
	due = s.withoutBackedOff(due, now)
	if len(due) == 0 {
		return 0
	}

	results := make([]bool, len(due))
	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)
	for i, id := range due {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = s.runJob(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := 0
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	return succeeded
}

func (s *Scheduler) runJob(ctx context.Context, accountID uuid.UUID) bool {
	ctx = logger.WithAttrs(ctx, slog.String("account_id", accountID.String()))
	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	if _, err := s.syncer.SyncAccount(ctx, accountID, TriggerScheduled); err != nil {
		retryAt := s.recordFailure(accountID, err)
		slog.WarnContext(ctx, "Scheduled sync failed",
			slog.Time("retry_at", retryAt),
			slog.Any("error", err))
		return false
	}
	s.mu.Lock()
	delete(s.failures, accountID)
	s.mu.Unlock()
	return true
}

func (s *Scheduler) withoutBackedOff(due []uuid.UUID, now time.Time) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ready := make([]uuid.UUID, 0, len(due))
	for _, id := range due {
		if f, ok := s.failures[id]; ok && now.Before(f.until) {
			continue
		}
		ready = append(ready, id)
	}
	return ready
}

// recordFailure schedules the next attempt. A revoked grant will not heal on its
// own, so it waits the full MaxFailureBackoff; a manual sync after reconnecting
// is not affected.
func (s *Scheduler) recordFailure(accountID uuid.UUID, err error) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.failures[accountID]
	f.count++
	delay := s.cfg.MaxFailureBackoff
	if !errors.Is(err, account.ErrReauthorizationRequired) {
		delay = s.cfg.FailureBackoff
		for i := 1; i < f.count && delay < s.cfg.MaxFailureBackoff; i++ {
			delay *= 2
		}
		delay = min(delay, s.cfg.MaxFailureBackoff)
	}
	f.until = s.now().Add(delay)
	s.failures[accountID] = f
	return f.until
}

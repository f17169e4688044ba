package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SettingsService struct {
	repo SettingsRepo
}

func NewSettingsService(repo SettingsRepo) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (s *SettingsService) Get(ctx context.Context, accountID uuid.UUID) (Settings, error) {
	st, err := s.repo.GetSettings(ctx, accountID)
	if errors.Is(err, ErrNotFound) {
		return Defaults(accountID), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

func (s *SettingsService) Update(ctx context.Context, accountID uuid.UUID, update Update) (Settings, error) {
	current, err := s.Get(ctx, accountID)
	if err != nil {
		return Settings{}, err
	}

	next := update.Apply(current)
	if err := next.Validate(); err != nil {
		return Settings{}, err
	}

	saved, err := s.repo.UpsertSettings(ctx, next)
	if err != nil {
		return Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return saved, nil
}

// Reset restores the defaults but keeps the sync bookkeeping.
func (s *SettingsService) Reset(ctx context.Context, accountID uuid.UUID) (Settings, error) {
	current, err := s.Get(ctx, accountID)
	if err != nil {
		return Settings{}, err
	}

	defaults := Defaults(accountID)
	defaults.LastSyncedAt = current.LastSyncedAt

	saved, err := s.repo.UpsertSettings(ctx, defaults)
	if err != nil {
		return Settings{}, fmt.Errorf("reset settings: %w", err)
	}
	return saved, nil
}

func (s *SettingsService) EnsureDefaults(ctx context.Context, accountID uuid.UUID) error {
	if err := s.repo.CreateSettings(ctx, Defaults(accountID)); err != nil {
		return fmt.Errorf("create default settings: %w", err)
	}
	return nil
}

func (s *SettingsService) MarkSynced(ctx context.Context, accountID uuid.UUID, at time.Time) error {
	if err := s.repo.MarkSynced(ctx, accountID, at); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	return nil
}

func (s *SettingsService) DueForSync(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := s.repo.ListDueForSync(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list accounts due for sync: %w", err)
	}
	return ids, nil
}

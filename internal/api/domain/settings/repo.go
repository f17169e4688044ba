package settings

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package settings

type SettingsRepo interface {
	GetSettings(ctx context.Context, accountID uuid.UUID) (Settings, error)
	UpsertSettings(ctx context.Context, s Settings) (Settings, error)
	// CreateSettings inserts s unless a row already exists.
	CreateSettings(ctx context.Context, s Settings) error
	MarkSynced(ctx context.Context, accountID uuid.UUID, at time.Time) error
	ListDueForSync(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

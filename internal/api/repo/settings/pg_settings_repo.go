package settings_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sellerops/internal/api/domain/settings"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var settingsColumns = []string{
	"account_id", "timezone", "urgent_window_hours", "sync_enabled",
	"sync_interval_minutes", "last_synced_at", "updated_at",
}

type PgSettingsRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgSettingsRepo(pg *postgres.Postgres) settings.SettingsRepo {
	return &PgSettingsRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgSettingsRepo) GetSettings(ctx context.Context, accountID uuid.UUID) (settings.Settings, error) {
	query, args, err := r.builder.Select(settingsColumns...).
		From("settings").
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return settings.Settings{}, fmt.Errorf("build get settings query: %w", err)
	}

	s, err := scanSettings(r.db.QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return settings.Settings{}, settings.ErrNotFound
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

func (r *PgSettingsRepo) UpsertSettings(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	query, args, err := r.insert(s).
		Suffix(postgres.OnConflictUpdate([]string{"account_id"},
			"timezone", "urgent_window_hours", "sync_enabled", "sync_interval_minutes", "last_synced_at")).
		Suffix("RETURNING " + strings.Join(settingsColumns, ", ")).
		ToSql()
	if err != nil {
		return settings.Settings{}, fmt.Errorf("build upsert settings query: %w", err)
	}

	saved, err := scanSettings(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return settings.Settings{}, fmt.Errorf("upsert settings: %w", err)
	}
	return saved, nil
}

func (r *PgSettingsRepo) CreateSettings(ctx context.Context, s settings.Settings) error {
	query, args, err := r.insert(s).
		Suffix("ON CONFLICT (account_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create settings query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}

func (r *PgSettingsRepo) MarkSynced(ctx context.Context, accountID uuid.UUID, at time.Time) error {
	query, args, err := r.builder.Update("settings").
		Set("last_synced_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark synced query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	return nil
}

// ListDueForSync returns accounts with sync enabled whose interval has elapsed,
// least recently synced first. Accounts without a settings row use the defaults.
func (r *PgSettingsRepo) ListDueForSync(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query, args, err := r.builder.Select("a.id").
		From("accounts a").
		LeftJoin("settings s ON s.account_id = a.id").
		Where("COALESCE(s.sync_enabled, TRUE)").
		Where(squirrel.Or{
			squirrel.Eq{"s.last_synced_at": nil},
			squirrel.Expr("s.last_synced_at + make_interval(mins => s.sync_interval_minutes) <= ?", now),
		}).
		OrderBy("s.last_synced_at NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due for sync query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query due accounts: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due accounts: %w", err)
	}
	return ids, nil
}

func (r *PgSettingsRepo) insert(s settings.Settings) squirrel.InsertBuilder {
	return r.builder.Insert("settings").
		Columns("account_id", "timezone", "urgent_window_hours", "sync_enabled", "sync_interval_minutes", "last_synced_at").
		Values(s.AccountID, s.Timezone, s.UrgentWindowHours, s.SyncEnabled, s.SyncIntervalMinutes, s.LastSyncedAt)
}

func scanSettings(row interface{ Scan(dest ...any) error }) (settings.Settings, error) {
	var s settings.Settings
	err := row.Scan(&s.AccountID, &s.Timezone, &s.UrgentWindowHours, &s.SyncEnabled,
		&s.SyncIntervalMinutes, &s.LastSyncedAt, &s.UpdatedAt)
	return s, err
}

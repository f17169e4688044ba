package settings

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
)

const (
	DefaultTimezone            = "America/Argentina/Buenos_Aires"
	DefaultUrgentWindowHours   = 24
	DefaultSyncEnabled         = true
	DefaultSyncIntervalMinutes = 30

	MinUrgentWindowHours   = 1
	MaxUrgentWindowHours   = 168
	MinSyncIntervalMinutes = 5
	MaxSyncIntervalMinutes = 1440
)

type Settings struct {
	AccountID           uuid.UUID  `json:"-"`
	Timezone            string     `json:"timezone"`
	UrgentWindowHours   int        `json:"urgent_window_hours"`
	SyncEnabled         bool       `json:"sync_enabled"`
	SyncIntervalMinutes int        `json:"sync_interval_minutes"`
	LastSyncedAt        *time.Time `json:"last_synced_at"`
	UpdatedAt           time.Time  `json:"updated_at,omitzero"`
}

func Defaults(accountID uuid.UUID) Settings {
	return Settings{
		AccountID:           accountID,
		Timezone:            DefaultTimezone,
		UrgentWindowHours:   DefaultUrgentWindowHours,
		SyncEnabled:         DefaultSyncEnabled,
		SyncIntervalMinutes: DefaultSyncIntervalMinutes,
	}
}

func (s Settings) Validate() error {
	if _, err := time.LoadLocation(s.Timezone); err != nil || s.Timezone == "" {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidSettings, s.Timezone)
	}
	if s.UrgentWindowHours < MinUrgentWindowHours || s.UrgentWindowHours > MaxUrgentWindowHours {
		return fmt.Errorf("%w: urgent_window_hours must be between %d and %d",
			ErrInvalidSettings, MinUrgentWindowHours, MaxUrgentWindowHours)
	}
	if s.SyncIntervalMinutes < MinSyncIntervalMinutes || s.SyncIntervalMinutes > MaxSyncIntervalMinutes {
		return fmt.Errorf("%w: sync_interval_minutes must be between %d and %d",
			ErrInvalidSettings, MinSyncIntervalMinutes, MaxSyncIntervalMinutes)
	}
	return nil
}

// Location falls back to UTC if the stored timezone no longer loads.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s Settings) UrgentWindow() time.Duration {
	return time.Duration(s.UrgentWindowHours) * time.Hour
}

func (s Settings) SyncInterval() time.Duration {
	return time.Duration(s.SyncIntervalMinutes) * time.Minute
}

// DueForSync reports whether the scheduler should pick the account up at now.
func (s Settings) DueForSync(now time.Time) bool {
	if !s.SyncEnabled {
		return false
	}
	if s.LastSyncedAt == nil {
		return true
	}
	return !now.Before(s.LastSyncedAt.Add(s.SyncInterval()))
}

// Update is a partial change; nil fields keep their current value.
type Update struct {
	Timezone            *string `json:"timezone"`
	UrgentWindowHours   *int    `json:"urgent_window_hours"`
	SyncEnabled         *bool   `json:"sync_enabled"`
	SyncIntervalMinutes *int    `json:"sync_interval_minutes"`
}

func (u Update) Apply(s Settings) Settings {
	if u.Timezone != nil {
		s.Timezone = *u.Timezone
	}
	if u.UrgentWindowHours != nil {
		s.UrgentWindowHours = *u.UrgentWindowHours
	}
	if u.SyncEnabled != nil {
		s.SyncEnabled = *u.SyncEnabled
	}
	if u.SyncIntervalMinutes != nil {
		s.SyncIntervalMinutes = *u.SyncIntervalMinutes
	}
	return s
}

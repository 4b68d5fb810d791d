package setting

import (
	"context"
)

// Repository defines the interface for guild settings persistence
type Repository interface {
	// Get returns the stored row or ErrSettingsNotFound
	Get(ctx context.Context, guildID string) (*Stored, error)

	// Upsert creates or replaces the row for s.GuildID
	Upsert(ctx context.Context, s *Stored) error
}

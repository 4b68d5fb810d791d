package setting

import (
	"context"
)

// SettingProvider resolves the effective settings of a guild. Use cases
// depend on this instead of the repository so that defaults are applied in
// exactly one place.
type SettingProvider interface {
	// Get returns the defaulted settings or ErrSettingsNotFound.
	Get(ctx context.Context, guildID string) (*GuildSettings, error)

	// GetOrDefaults never fails on a missing row; it returns Defaults instead.
	GetOrDefaults(ctx context.Context, guildID string) (*GuildSettings, error)

	// Save validates and persists s.
	Save(ctx context.Context, s *GuildSettings) error
}

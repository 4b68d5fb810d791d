package setting

import "errors"

var (
	// ErrSettingsNotFound is returned when a guild has never run setup
	ErrSettingsNotFound = errors.New("guild settings not found")

	// ErrUnknownFeature is returned when toggling a feature that does not exist
	ErrUnknownFeature = errors.New("unknown feature")
)

// Package biztime provides the time helpers shared by the bot.
// All storage and transport use UTC. A guild timezone is only applied when
// formatting a time for display.
package biztime

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is used when neither the guild nor the config names one.
const DefaultTimezone = "UTC"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ValidateTimezone reports whether tz is a loadable IANA zone name.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return fmt.Errorf("timezone is required")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return nil
}

// Location loads tz, falling back to UTC for empty or unknown names.
func Location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatIn formats t in the given zone.
func FormatIn(t time.Time, tz, layout string) string {
	return t.In(Location(tz)).Format(layout)
}

// DiscordRelative renders t as a client-localised relative timestamp.
func DiscordRelative(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

// MillisBetween returns to - from in milliseconds, never negative.
func MillisBetween(from, to time.Time) int64 {
	ms := to.Sub(from).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

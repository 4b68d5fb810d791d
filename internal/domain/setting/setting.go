package setting

import (
	"fmt"
	"time"

	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/utils"
)

const (
	DefaultWarnThreshold      = 3
	DefaultWarnTimeoutMinutes = 10
	DefaultCategorySlots      = 1

	MinCategorySlots = 1
	MaxCategorySlots = 35
	// MaxWarnTimeoutMinutes is the platform's 28 day timeout ceiling.
	MaxWarnTimeoutMinutes = 40320
)

// Feature names a per-guild toggle. The values double as the action suffix
// of the settings panel buttons.
type Feature string

const (
	FeatureSmartReplies  Feature = "smart"
	FeatureAISuggestions Feature = "ai"
	FeatureAutoPriority  Feature = "priority"
)

var featureLabels = map[Feature]string{
	FeatureSmartReplies:  "smart replies",
	FeatureAISuggestions: "AI suggestions",
	FeatureAutoPriority:  "auto priority",
}

func (f Feature) IsValid() bool {
	_, ok := featureLabels[f]
	return ok
}

func (f Feature) Label() string {
	if l, ok := featureLabels[f]; ok {
		return l
	}
	return string(f)
}

// GuildSettings is the effective configuration of one guild with every
// default already applied.
type GuildSettings struct {
	GuildID            string    `json:"guild_id" validate:"required"`
	TicketParentID     string    `json:"ticket_parent_id"`
	StaffRoleID        string    `json:"staff_role_id"`
	Timezone           string    `json:"timezone" validate:"required,timezone"`
	CategorySlots      int       `json:"category_slots" validate:"min=1,max=35"`
	WarnThreshold      int       `json:"warn_threshold" validate:"min=1"`
	WarnTimeoutMinutes int       `json:"warn_timeout_minutes" validate:"min=1,max=40320"`
	SmartReplies       bool      `json:"smart_replies"`
	AISuggestions      bool      `json:"ai_suggestions"`
	AutoPriority       bool      `json:"auto_priority"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Stored is a settings row as persisted. A nil field was never written.
type Stored struct {
	GuildID            string
	TicketParentID     *string
	StaffRoleID        *string
	Timezone           *string
	CategorySlots      *int
	WarnThreshold      *int
	WarnTimeoutMinutes *int
	SmartReplies       *bool
	AISuggestions      *bool
	AutoPriority       *bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// WithDefaults fills every unset field of s:
//
//	warn_threshold        3
//	warn_timeout_minutes  10
//	category_slots        1
//	smart/ai/priority     on
//	timezone              defaultTimezone, else UTC
//
// Stored values outside their valid range are replaced by the default too.
func WithDefaults(s Stored, defaultTimezone string) GuildSettings {
	if defaultTimezone == "" {
		defaultTimezone = biztime.DefaultTimezone
	}

	g := GuildSettings{
		GuildID:            s.GuildID,
		TicketParentID:     deref(s.TicketParentID, ""),
		StaffRoleID:        deref(s.StaffRoleID, ""),
		Timezone:           deref(s.Timezone, defaultTimezone),
		CategorySlots:      deref(s.CategorySlots, DefaultCategorySlots),
		WarnThreshold:      deref(s.WarnThreshold, DefaultWarnThreshold),
		WarnTimeoutMinutes: deref(s.WarnTimeoutMinutes, DefaultWarnTimeoutMinutes),
		SmartReplies:       deref(s.SmartReplies, true),
		AISuggestions:      deref(s.AISuggestions, true),
		AutoPriority:       deref(s.AutoPriority, true),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if g.Timezone == "" || biztime.ValidateTimezone(g.Timezone) != nil {
		g.Timezone = defaultTimezone
	}
	if g.CategorySlots < MinCategorySlots || g.CategorySlots > MaxCategorySlots {
		g.CategorySlots = DefaultCategorySlots
	}
	if g.WarnThreshold < 1 {
		g.WarnThreshold = DefaultWarnThreshold
	}
	if g.WarnTimeoutMinutes < 1 || g.WarnTimeoutMinutes > MaxWarnTimeoutMinutes {
		g.WarnTimeoutMinutes = DefaultWarnTimeoutMinutes
	}
	return g
}

// Defaults returns the settings a guild has before its first setup.
func Defaults(guildID, defaultTimezone string) GuildSettings {
	return WithDefaults(Stored{GuildID: guildID}, defaultTimezone)
}

// ToStored returns s with every field set.
func (s GuildSettings) ToStored() Stored {
	return Stored{
		GuildID:            s.GuildID,
		TicketParentID:     &s.TicketParentID,
		StaffRoleID:        &s.StaffRoleID,
		Timezone:           &s.Timezone,
		CategorySlots:      &s.CategorySlots,
		WarnThreshold:      &s.WarnThreshold,
		WarnTimeoutMinutes: &s.WarnTimeoutMinutes,
		SmartReplies:       &s.SmartReplies,
		AISuggestions:      &s.AISuggestions,
		AutoPriority:       &s.AutoPriority,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// IsConfigured reports whether tickets can be opened: both the parent
// container and the staff role are known.
func (s *GuildSettings) IsConfigured() bool {
	return s.TicketParentID != "" && s.StaffRoleID != ""
}

func (s *GuildSettings) Validate() error {
	return utils.ValidateStruct(s)
}

// Configure records the result of the setup command. Tunables are kept.
func (s *GuildSettings) Configure(parentID, staffRoleID, timezone string) error {
	if parentID == "" {
		return fmt.Errorf("ticket parent is required")
	}
	if staffRoleID == "" {
		return fmt.Errorf("staff role is required")
	}
	if timezone == "" {
		timezone = biztime.DefaultTimezone
	}
	if err := biztime.ValidateTimezone(timezone); err != nil {
		return err
	}
	s.TicketParentID = parentID
	s.StaffRoleID = staffRoleID
	s.Timezone = timezone
	return nil
}

func (s *GuildSettings) SetCategorySlots(n int) error {
	if n < MinCategorySlots || n > MaxCategorySlots {
		return fmt.Errorf("category slots must be between %d and %d", MinCategorySlots, MaxCategorySlots)
	}
	s.CategorySlots = n
	return nil
}

func (s *GuildSettings) SetWarnThreshold(n int) error {
	if n < 1 {
		return fmt.Errorf("warn threshold must be at least 1")
	}
	s.WarnThreshold = n
	return nil
}

func (s *GuildSettings) SetWarnTimeoutMinutes(n int) error {
	if n < 1 || n > MaxWarnTimeoutMinutes {
		return fmt.Errorf("warn timeout must be between 1 and %d minutes", MaxWarnTimeoutMinutes)
	}
	s.WarnTimeoutMinutes = n
	return nil
}

func (s *GuildSettings) Enabled(f Feature) bool {
	switch f {
	case FeatureSmartReplies:
		return s.SmartReplies
	case FeatureAISuggestions:
		return s.AISuggestions
	case FeatureAutoPriority:
		return s.AutoPriority
	}
	return false
}

// Toggle flips f and returns its new state.
func (s *GuildSettings) Toggle(f Feature) (bool, error) {
	switch f {
	case FeatureSmartReplies:
		s.SmartReplies = !s.SmartReplies
	case FeatureAISuggestions:
		s.AISuggestions = !s.AISuggestions
	case FeatureAutoPriority:
		s.AutoPriority = !s.AutoPriority
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownFeature, f)
	}
	return s.Enabled(f), nil
}

// WarnTimeout is the auto-timeout duration.
func (s *GuildSettings) WarnTimeout() time.Duration {
	return time.Duration(s.WarnTimeoutMinutes) * time.Minute
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

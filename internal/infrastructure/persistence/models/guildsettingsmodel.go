package models

import "time"

// GuildSettingsModel stores one guild's configuration. Nullable columns were
// never written and take their default when read.
type GuildSettingsModel struct {
	GuildID            string    `gorm:"column:guild_id;type:varchar(32);primaryKey"`
	TicketParentID     *string   `gorm:"column:ticket_parent_id;type:varchar(32)"`
	StaffRoleID        *string   `gorm:"column:staff_role_id;type:varchar(32)"`
	Timezone           *string   `gorm:"column:timezone;type:varchar(64)"`
	CategorySlots      *int      `gorm:"column:category_slots"`
	WarnThreshold      *int      `gorm:"column:warn_threshold"`
	WarnTimeoutMinutes *int      `gorm:"column:warn_timeout_minutes"`
	SmartReplies       *bool     `gorm:"column:smart_replies"`
	AISuggestions      *bool     `gorm:"column:ai_suggestions"`
	AutoPriority       *bool     `gorm:"column:auto_priority"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (GuildSettingsModel) TableName() string {
	return "guild_settings"
}

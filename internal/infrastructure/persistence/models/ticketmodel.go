package models

import "time"

// TicketModel is the GORM model for the tickets table
type TicketModel struct {
	ID                   uint       `gorm:"primaryKey;autoIncrement"`
	GuildID              string     `gorm:"column:guild_id;type:varchar(32);not null;index:idx_tickets_guild_creator"`
	ChannelID            string     `gorm:"column:channel_id;type:varchar(32);not null;index"`
	MessageID            *string    `gorm:"column:message_id;type:varchar(32);index"`
	CreatorID            string     `gorm:"column:creator_id;type:varchar(32);not null;index:idx_tickets_guild_creator"`
	Query                string     `gorm:"column:query;type:text"`
	Status               string     `gorm:"column:status;type:varchar(16);not null;index"`
	Priority             string     `gorm:"column:priority;type:varchar(16);not null;default:'NORMAL'"`
	PriorityReason       *string    `gorm:"column:priority_reason;type:varchar(255)"`
	CategoryID           *uint      `gorm:"column:category_id"`
	CategoryName         *string    `gorm:"column:category_name;type:varchar(100)"`
	CategoryDescription  *string    `gorm:"column:category_description;type:varchar(255)"`
	ClaimedBy            *string    `gorm:"column:claimed_by;type:varchar(32);index"`
	ClosedBy             *string    `gorm:"column:closed_by;type:varchar(32);index"`
	ReopenedBy           *string    `gorm:"column:reopened_by;type:varchar(32)"`
	ClaimedAt            *time.Time `gorm:"column:claimed_at"`
	ClosedAt             *time.Time `gorm:"column:closed_at"`
	ReopenedAt           *time.Time `gorm:"column:reopened_at"`
	ReopenCount          int        `gorm:"column:reopen_count;not null;default:0"`
	LastUserMessageAt    *time.Time `gorm:"column:last_user_message_at"`
	LastStaffMessageAt   *time.Time `gorm:"column:last_staff_message_at"`
	FirstStaffResponseAt *time.Time `gorm:"column:first_staff_response_at"`
	FirstResponseMS      *int64     `gorm:"column:first_response_ms"`
	AvgResponseMS        *int64     `gorm:"column:avg_response_ms"`
	ResponseCount        int        `gorm:"column:response_count;not null;default:0"`
	CreatedAt            time.Time  `gorm:"column:created_at;not null;index"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

// TableName returns the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}

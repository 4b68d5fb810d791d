package models

import "time"

// TicketLinkModel is one direction of a ticket relation.
type TicketLinkModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	GuildID        string    `gorm:"column:guild_id;type:varchar(32);not null"`
	TicketID       uint      `gorm:"column:ticket_id;not null;uniqueIndex:idx_ticket_links_pair"`
	LinkedTicketID uint      `gorm:"column:linked_ticket_id;not null;uniqueIndex:idx_ticket_links_pair"`
	CreatedBy      string    `gorm:"column:created_by;type:varchar(32);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (TicketLinkModel) TableName() string {
	return "ticket_links"
}

package models

import "time"

// CategoryModel is the GORM model for the ticket_categories table
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	GuildID     string    `gorm:"column:guild_id;type:varchar(32);not null;index"`
	Name        string    `gorm:"column:name;type:varchar(100);not null"`
	Description *string   `gorm:"column:description;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "ticket_categories"
}

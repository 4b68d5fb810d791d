package models

import "time"

// ModActionModel is an append-only moderation audit row.
type ModActionModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	GuildID   string    `gorm:"column:guild_id;type:varchar(32);not null;index:idx_mod_actions_lookup"`
	UserID    string    `gorm:"column:user_id;type:varchar(32);not null;index:idx_mod_actions_lookup"`
	Action    string    `gorm:"column:action;type:varchar(8);not null;index:idx_mod_actions_lookup"`
	Reason    *string   `gorm:"column:reason;type:varchar(512)"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (ModActionModel) TableName() string {
	return "mod_actions"
}

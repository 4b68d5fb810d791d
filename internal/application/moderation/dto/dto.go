package dto

import "github.com/swiftticket/swiftticket/internal/domain/moderation"

// ModActionDTO is a logged moderation action plus the escalation outcome.
type ModActionDTO struct {
	ID        uint   `json:"id"`
	GuildID   string `json:"guild_id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Reason    string `json:"reason,omitempty"`
	CreatedBy string `json:"created_by"`
	Warnings  int64  `json:"warnings"`
	TimedOut  bool   `json:"timed_out"`
}

func ToModActionDTO(m *moderation.ModAction) ModActionDTO {
	return ModActionDTO{
		ID:        m.ID(),
		GuildID:   m.GuildID(),
		UserID:    m.UserID(),
		Action:    m.Action().String(),
		Reason:    m.Reason(),
		CreatedBy: m.CreatedBy(),
	}
}

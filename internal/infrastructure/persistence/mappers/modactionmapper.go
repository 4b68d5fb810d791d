package mappers

import (
	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
)

func ModActionToModel(m *moderation.ModAction) *models.ModActionModel {
	return &models.ModActionModel{
		ID:        m.ID(),
		GuildID:   m.GuildID(),
		UserID:    m.UserID(),
		Action:    m.Action().String(),
		Reason:    nullable(m.Reason()),
		CreatedBy: m.CreatedBy(),
		CreatedAt: m.CreatedAt(),
	}
}

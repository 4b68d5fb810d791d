package mappers

import (
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
)

func LinkToModel(l *ticket.Link) *models.TicketLinkModel {
	return &models.TicketLinkModel{
		ID:             l.ID(),
		GuildID:        l.GuildID(),
		TicketID:       l.TicketID(),
		LinkedTicketID: l.LinkedTicketID(),
		CreatedBy:      l.CreatedBy(),
		CreatedAt:      l.CreatedAt(),
	}
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/mappers"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
	"github.com/swiftticket/swiftticket/internal/shared/db"
)

var _ ticket.LinkRepository = (*TicketLinkRepository)(nil)

type TicketLinkRepository struct {
	db *gorm.DB
}

func NewTicketLinkRepository(db *gorm.DB) *TicketLinkRepository {
	return &TicketLinkRepository{db: db}
}

// CreatePair inserts both directions. An existing direction is kept as is,
// so linking the same tickets twice is harmless.
func (r *TicketLinkRepository) CreatePair(ctx context.Context, links []*ticket.Link) error {
	if len(links) == 0 {
		return nil
	}

	list := make([]*models.TicketLinkModel, 0, len(links))
	for _, l := range links {
		list = append(list, mappers.LinkToModel(l))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&list).Error; err != nil {
		return fmt.Errorf("failed to create ticket links: %w", err)
	}

	for i, l := range links {
		l.SetID(list[i].ID)
	}
	return nil
}

func (r *TicketLinkRepository) ListLinkedTicketIDs(ctx context.Context, ticketID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketLinkModel{}).
		Where("ticket_id = ?", ticketID).
		Order("linked_ticket_id ASC").
		Pluck("linked_ticket_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked tickets: %w", err)
	}
	return ids, nil
}

package mappers

import (
	"fmt"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ToDomainList converts multiple models, failing on the first bad row.
	ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	s := t.State()
	model := &models.TicketModel{
		ID:                   s.ID,
		GuildID:              s.GuildID,
		ChannelID:            s.ChannelID,
		MessageID:            nullable(s.MessageID),
		CreatorID:            s.CreatorID,
		Query:                s.Query,
		Status:               s.Status.String(),
		Priority:             s.Priority.String(),
		PriorityReason:       nullable(s.PriorityReason),
		ClaimedBy:            nullable(s.ClaimedBy),
		ClosedBy:             nullable(s.ClosedBy),
		ReopenedBy:           nullable(s.ReopenedBy),
		ClaimedAt:            s.ClaimedAt,
		ClosedAt:             s.ClosedAt,
		ReopenedAt:           s.ReopenedAt,
		ReopenCount:          s.ReopenCount,
		LastUserMessageAt:    s.LastUserMessageAt,
		LastStaffMessageAt:   s.LastStaffMessageAt,
		FirstStaffResponseAt: s.FirstStaffResponseAt,
		FirstResponseMS:      s.Metrics.FirstResponseMS,
		AvgResponseMS:        s.Metrics.AvgResponseMS,
		ResponseCount:        s.Metrics.ResponseCount,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if c := s.Category; c != nil {
		model.CategoryID = nullable(c.ID)
		model.CategoryName = &c.Name
		model.CategoryDescription = nullable(c.Description)
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}

	var category *ticket.CategorySnapshot
	if model.CategoryName != nil {
		category = &ticket.CategorySnapshot{
			ID:          valueOr(model.CategoryID, 0),
			Name:        *model.CategoryName,
			Description: valueOr(model.CategoryDescription, ""),
		}
	}

	return ticket.ReconstructTicket(ticket.State{
		ID:                   model.ID,
		GuildID:              model.GuildID,
		ChannelID:            model.ChannelID,
		MessageID:            valueOr(model.MessageID, ""),
		CreatorID:            model.CreatorID,
		Query:                model.Query,
		Status:               status,
		Priority:             priority,
		PriorityReason:       valueOr(model.PriorityReason, ""),
		Category:             category,
		ClaimedBy:            valueOr(model.ClaimedBy, ""),
		ClosedBy:             valueOr(model.ClosedBy, ""),
		ReopenedBy:           valueOr(model.ReopenedBy, ""),
		CreatedAt:            model.CreatedAt.UTC(),
		ClaimedAt:            utcPtr(model.ClaimedAt),
		ClosedAt:             utcPtr(model.ClosedAt),
		ReopenedAt:           utcPtr(model.ReopenedAt),
		ReopenCount:          model.ReopenCount,
		LastUserMessageAt:    utcPtr(model.LastUserMessageAt),
		LastStaffMessageAt:   utcPtr(model.LastStaffMessageAt),
		FirstStaffResponseAt: utcPtr(model.FirstStaffResponseAt),
		Metrics: ticket.ResponseMetrics{
			FirstResponseMS: model.FirstResponseMS,
			AvgResponseMS:   model.AvgResponseMS,
			ResponseCount:   model.ResponseCount,
		},
		UpdatedAt: model.UpdatedAt.UTC(),
	})
}

func (m *TicketMapperImpl) ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/risk"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
)

// ViewBuilder gathers the moderation summary, ticket history, links and
// suggested replies that accompany a ticket message.
type ViewBuilder struct {
	ticketRepo     ticket.TicketRepository
	linkRepo       ticket.LinkRepository
	moderationRepo moderation.Repository
}

func NewViewBuilder(
	ticketRepo ticket.TicketRepository,
	linkRepo ticket.LinkRepository,
	moderationRepo moderation.Repository,
) *ViewBuilder {
	return &ViewBuilder{
		ticketRepo:     ticketRepo,
		linkRepo:       linkRepo,
		moderationRepo: moderationRepo,
	}
}

func (b *ViewBuilder) Build(ctx context.Context, t *ticket.Ticket, s *setting.GuildSettings) (*dto.TicketView, error) {
	summary, err := b.moderationRepo.GetSummary(ctx, t.GuildID(), t.CreatorID())
	if err != nil {
		return nil, fmt.Errorf("failed to load moderation summary: %w", err)
	}

	history, err := b.ticketRepo.GetCreatorHistory(ctx, t.GuildID(), t.CreatorID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket history: %w", err)
	}

	links, err := b.linkRepo.ListLinkedTicketIDs(ctx, t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load linked tickets: %w", err)
	}

	var suggestions []string
	if s.AISuggestions {
		suggestions = risk.Suggestions(t.Query())
	}

	return &dto.TicketView{
		Ticket:      dto.ToTicketDTO(t),
		Timezone:    s.Timezone,
		Moderation:  dto.ToModerationDTO(summary, history),
		Links:       links,
		Suggestions: suggestions,
	}, nil
}

package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/db"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const msgLinkDenied = "You cannot link this ticket."

type PrepareLinkCommand struct {
	GuildID   string
	MessageID string
	Actor     permission.Actor
}

type PrepareLinkResult struct {
	TicketID uint `json:"ticket_id"`
}

// PrepareLinkUseCase checks a link button press before the link modal opens.
type PrepareLinkUseCase struct {
	resolver ticketResolver
	policy   *permission.Policy
	logger   logger.Interface
}

func NewPrepareLinkUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	logger logger.Interface,
) *PrepareLinkUseCase {
	return &PrepareLinkUseCase{
		resolver: ticketResolver{ticketRepo: ticketRepo, settings: settings, logger: logger},
		policy:   policy,
		logger:   logger,
	}
}

func (uc *PrepareLinkUseCase) Execute(ctx context.Context, cmd PrepareLinkCommand) (*PrepareLinkResult, error) {
	t, s, err := uc.resolver.byMessage(ctx, cmd.GuildID, cmd.MessageID)
	if err != nil {
		return nil, err
	}
	if err := authorize(uc.policy, cmd.Actor, ticketSubject(t, s), permvo.ActionLink, msgLinkDenied); err != nil {
		return nil, err
	}
	return &PrepareLinkResult{TicketID: t.ID()}, nil
}

type LinkTicketsCommand struct {
	GuildID        string
	MessageID      string
	SourceTicketID string
	// LinkedTicketID is the raw modal input.
	LinkedTicketID string
	Actor          permission.Actor
}

type LinkTicketsResult struct {
	TicketID       uint `json:"ticket_id"`
	LinkedTicketID uint `json:"linked_ticket_id"`
}

// LinkTicketsUseCase records a symmetric link between two tickets of one guild.
type LinkTicketsUseCase struct {
	resolver  ticketResolver
	linkRepo  ticket.LinkRepository
	txManager db.Transactor
	policy    *permission.Policy
	views     *ViewBuilder
	publisher TicketPublisher
	logger    logger.Interface
	now       func() time.Time
}

func NewLinkTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	linkRepo ticket.LinkRepository,
	txManager db.Transactor,
	settings setting.SettingProvider,
	policy *permission.Policy,
	views *ViewBuilder,
	publisher TicketPublisher,
	logger logger.Interface,
) *LinkTicketsUseCase {
	return &LinkTicketsUseCase{
		resolver:  ticketResolver{ticketRepo: ticketRepo, settings: settings, logger: logger},
		linkRepo:  linkRepo,
		txManager: txManager,
		policy:    policy,
		views:     views,
		publisher: publisher,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *LinkTicketsUseCase) Execute(ctx context.Context, cmd LinkTicketsCommand) (*LinkTicketsResult, error) {
	uc.logger.Infow("executing link tickets use case",
		"guild_id", cmd.GuildID,
		"source", cmd.SourceTicketID,
		"linked", cmd.LinkedTicketID,
		"actor_id", cmd.Actor.UserID)

	source, err := uc.loadSource(ctx, cmd)
	if err != nil {
		return nil, err
	}
	s, err := uc.resolver.requireSettings(ctx, cmd.GuildID)
	if err != nil {
		return nil, err
	}
	if err := authorize(uc.policy, cmd.Actor, ticketSubject(source, s), permvo.ActionLink, msgLinkDenied); err != nil {
		return nil, err
	}

	linkedID, err := parseTicketID(cmd.LinkedTicketID)
	if err != nil {
		return nil, errors.NewValidationError("Please provide a numeric ticket ID.")
	}
	if linkedID == source.ID() {
		return nil, errors.NewValidationError("A ticket cannot be linked to itself.")
	}
	target, err := uc.resolver.ticketRepo.GetByID(ctx, linkedID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("Ticket #%d does not exist.", linkedID))
		}
		return nil, errors.NewUpstreamError("failed to load linked ticket", err)
	}
	if target.GuildID() != cmd.GuildID {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Ticket #%d does not exist.", linkedID))
	}

	links, err := ticket.NewLinkPair(cmd.GuildID, source.ID(), target.ID(), cmd.Actor.UserID, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.linkRepo.CreatePair(txCtx, links)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket links", "error", err, "ticket_id", source.ID())
		return nil, errors.NewUpstreamError("failed to link tickets", err)
	}

	if err := refreshTicketMessage(ctx, uc.views, uc.publisher, uc.logger, source, s); err != nil {
		return nil, err
	}
	if err := refreshTicketMessage(ctx, uc.views, uc.publisher, uc.logger, target, s); err != nil {
		uc.logger.Warnw("linked ticket message not refreshed", "error", err, "ticket_id", target.ID())
	}

	uc.logger.Infow("tickets linked successfully",
		"ticket_id", source.ID(),
		"linked_ticket_id", target.ID())

	return &LinkTicketsResult{TicketID: source.ID(), LinkedTicketID: target.ID()}, nil
}

// loadSource prefers the ticket id carried by the modal and falls back to the
// message the modal was opened from.
func (uc *LinkTicketsUseCase) loadSource(ctx context.Context, cmd LinkTicketsCommand) (*ticket.Ticket, error) {
	var (
		t   *ticket.Ticket
		err error
	)
	if id, perr := parseTicketID(cmd.SourceTicketID); perr == nil {
		t, err = uc.resolver.ticketRepo.GetByID(ctx, id)
	} else {
		t, err = uc.resolver.ticketRepo.GetByMessageID(ctx, cmd.MessageID)
	}
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError(msgTicketMissing)
		}
		return nil, errors.NewUpstreamError("failed to load ticket", err)
	}
	if t.GuildID() != cmd.GuildID {
		return nil, errors.NewNotFoundError(msgTicketMissing)
	}
	return t, nil
}

func parseTicketID(raw string) (uint, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid ticket id %q", raw)
	}
	return uint(n), nil
}

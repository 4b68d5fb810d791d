package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// TransitionTicketCommand identifies the ticket by the message whose button
// was pressed.
type TransitionTicketCommand struct {
	GuildID   string
	MessageID string
	Actor     permission.Actor
}

type TransitionTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type transitionRule struct {
	name       string
	action     permvo.Action
	denied     string
	invalid    string
	apply      func(t *ticket.Ticket, actorID string, at time.Time) error
	afterWrite func(ctx context.Context, t *ticket.Ticket) error
}

// ticketTransition runs one state machine edge: resolve, authorize, apply,
// conditional write, side effects, re-render.
type ticketTransition struct {
	resolver  ticketResolver
	policy    *permission.Policy
	views     *ViewBuilder
	publisher TicketPublisher
	logger    logger.Interface
	now       func() time.Time
}

func newTicketTransition(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	views *ViewBuilder,
	publisher TicketPublisher,
	logger logger.Interface,
) ticketTransition {
	return ticketTransition{
		resolver:  ticketResolver{ticketRepo: ticketRepo, settings: settings, logger: logger},
		policy:    policy,
		views:     views,
		publisher: publisher,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (tt ticketTransition) run(ctx context.Context, cmd TransitionTicketCommand, rule transitionRule) (*TransitionTicketResult, error) {
	tt.logger.Infow("executing "+rule.name+" ticket use case",
		"guild_id", cmd.GuildID,
		"message_id", cmd.MessageID,
		"actor_id", cmd.Actor.UserID)

	t, s, err := tt.resolver.byMessage(ctx, cmd.GuildID, cmd.MessageID)
	if err != nil {
		return nil, err
	}

	if err := authorize(tt.policy, cmd.Actor, ticketSubject(t, s), rule.action, rule.denied); err != nil {
		tt.logger.Warnw("ticket action denied",
			"action", rule.name,
			"ticket_id", t.ID(),
			"actor_id", cmd.Actor.UserID)
		return nil, err
	}

	expected := t.Status()
	if err := rule.apply(t, cmd.Actor.UserID, tt.now()); err != nil {
		if ticket.IsInvalidTransition(err) {
			return nil, errors.NewInvalidStateError(rule.invalid, err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := tt.resolver.ticketRepo.UpdateStatus(ctx, t, expected); err != nil {
		if stderrors.Is(err, ticket.ErrStatusConflict) {
			tt.logger.Warnw("ticket status changed concurrently",
				"ticket_id", t.ID(),
				"expected", expected.String())
			return nil, errors.NewInvalidStateError(rule.invalid, "status changed concurrently")
		}
		tt.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", t.ID())
		return nil, errors.NewUpstreamError("failed to update ticket", err)
	}

	var sideEffectErr error
	if rule.afterWrite != nil {
		if err := rule.afterWrite(ctx, t); err != nil {
			tt.logger.Errorw("failed to apply channel permissions",
				"error", err,
				"ticket_id", t.ID(),
				"channel_id", t.ChannelID())
			sideEffectErr = errors.NewUpstreamError("ticket updated but channel permissions could not be changed", err)
		}
	}

	if err := tt.refresh(ctx, t, s); err != nil && sideEffectErr == nil {
		sideEffectErr = err
	}
	if sideEffectErr != nil {
		return nil, sideEffectErr
	}

	tt.logger.Infow("ticket "+rule.name+" completed successfully",
		"ticket_id", t.ID(),
		"status", t.Status().String())

	return &TransitionTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

func (tt ticketTransition) refresh(ctx context.Context, t *ticket.Ticket, s *setting.GuildSettings) error {
	return refreshTicketMessage(ctx, tt.views, tt.publisher, tt.logger, t, s)
}

func refreshTicketMessage(
	ctx context.Context,
	views *ViewBuilder,
	publisher TicketPublisher,
	log logger.Interface,
	t *ticket.Ticket,
	s *setting.GuildSettings,
) error {
	if !t.HasMessage() {
		return nil
	}
	view, err := views.Build(ctx, t, s)
	if err != nil {
		log.Errorw("failed to build ticket view", "error", err, "ticket_id", t.ID())
		return errors.NewUpstreamError("failed to build ticket view", err)
	}
	if err := publisher.RefreshTicket(ctx, t.ChannelID(), t.MessageID(), view); err != nil {
		log.Errorw("failed to refresh ticket message", "error", err, "ticket_id", t.ID())
		return errors.NewUpstreamError("ticket updated but its message could not be refreshed", err)
	}
	return nil
}

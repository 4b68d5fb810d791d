package usecases

import (
	"context"
	stderrors "errors"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const (
	msgTicketMissing = "This ticket could not be found."
	msgNotConfigured = "Run /ticket setup first."
)

// ticketResolver loads the context every ticket button needs: the ticket the
// pressed message renders and the guild settings.
type ticketResolver struct {
	ticketRepo ticket.TicketRepository
	settings   setting.SettingProvider
	logger     logger.Interface
}

func (r ticketResolver) byMessage(ctx context.Context, guildID, messageID string) (*ticket.Ticket, *setting.GuildSettings, error) {
	t, err := r.ticketRepo.GetByMessageID(ctx, messageID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, nil, errors.NewNotFoundError(msgTicketMissing)
		}
		r.logger.Errorw("failed to load ticket by message", "error", err, "message_id", messageID)
		return nil, nil, errors.NewUpstreamError("failed to load ticket", err)
	}
	if t.GuildID() != guildID {
		return nil, nil, errors.NewNotFoundError(msgTicketMissing)
	}

	s, err := r.requireSettings(ctx, guildID)
	if err != nil {
		return nil, nil, err
	}
	return t, s, nil
}

func (r ticketResolver) requireSettings(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	s, err := r.settings.Get(ctx, guildID)
	if err != nil {
		if stderrors.Is(err, setting.ErrSettingsNotFound) {
			return nil, errors.NewNotConfiguredError(msgNotConfigured)
		}
		r.logger.Errorw("failed to load guild settings", "error", err, "guild_id", guildID)
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}
	return s, nil
}

func ticketSubject(t *ticket.Ticket, s *setting.GuildSettings) permission.Subject {
	subject := permission.Subject{StaffRoleID: s.StaffRoleID}
	if t != nil {
		subject.CreatorID = t.CreatorID()
		subject.ClaimantID = t.ClaimedBy()
	}
	return subject
}

func authorize(policy *permission.Policy, actor permission.Actor, subject permission.Subject, action permvo.Action, denied string) error {
	allowed, err := policy.Authorize(actor, subject, permvo.ResourceTicket, action)
	if err != nil {
		return errors.NewUpstreamError("failed to check permissions", err)
	}
	if !allowed {
		return errors.NewForbiddenError(denied)
	}
	return nil
}

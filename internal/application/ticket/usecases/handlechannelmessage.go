package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/risk"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// Author roles reported by HandleChannelMessageResult.
const (
	AuthorCreator = "creator"
	AuthorStaff   = "staff"
	AuthorOther   = "other"
)

type HandleChannelMessageCommand struct {
	GuildID   string
	ChannelID string
	Author    permission.Actor
	Content   string
	SentAt    time.Time
}

type HandleChannelMessageResult struct {
	// Ignored is set when the channel does not belong to a ticket.
	Ignored        bool     `json:"ignored"`
	TicketID       uint     `json:"ticket_id,omitempty"`
	Author         string   `json:"author,omitempty"`
	Flagged        []string `json:"flagged,omitempty"`
	TimedOut       bool     `json:"timed_out"`
	PriorityRaised bool     `json:"priority_raised"`
	SmartSent      bool     `json:"smart_sent"`
}

// HandleChannelMessageUseCase watches messages posted in ticket channels. It
// auto-flags risky wording, raises ticket priority, tracks user activity and
// maintains staff response-time metrics.
type HandleChannelMessageUseCase struct {
	ticketRepo ticket.TicketRepository
	settings   setting.SettingProvider
	warner     KeywordWarner
	notifier   ChannelNotifier
	logger     logger.Interface
}

func NewHandleChannelMessageUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	warner KeywordWarner,
	notifier ChannelNotifier,
	logger logger.Interface,
) *HandleChannelMessageUseCase {
	return &HandleChannelMessageUseCase{
		ticketRepo: ticketRepo,
		settings:   settings,
		warner:     warner,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *HandleChannelMessageUseCase) Execute(ctx context.Context, cmd HandleChannelMessageCommand) (*HandleChannelMessageResult, error) {
	t, err := uc.ticketRepo.GetByChannelID(ctx, cmd.ChannelID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return &HandleChannelMessageResult{Ignored: true}, nil
		}
		return nil, errors.NewUpstreamError("failed to load ticket", err)
	}
	if t.GuildID() != cmd.GuildID {
		return &HandleChannelMessageResult{Ignored: true}, nil
	}

	s, err := uc.settings.GetOrDefaults(ctx, cmd.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}

	result := &HandleChannelMessageResult{TicketID: t.ID(), Author: AuthorOther}
	isStaff := cmd.Author.IsStaff(s.StaffRoleID)

	// The steps below are independent; failures are joined.
	var errs []error

	if !isStaff {
		if hits := risk.FlaggedKeywords(cmd.Content); len(hits) > 0 {
			result.Flagged = hits
			uc.logger.Infow("flagged keywords in ticket channel",
				"ticket_id", t.ID(),
				"user_id", cmd.Author.UserID,
				"keywords", hits)

			timedOut, err := uc.warner.WarnForKeywords(ctx, cmd.GuildID, cmd.Author.UserID, hits)
			if err != nil {
				errs = append(errs, err)
			}
			result.TimedOut = timedOut

			if err := uc.notifier.PostSafetyAlert(ctx, t.ChannelID(), s.StaffRoleID, hits); err != nil {
				errs = append(errs, err)
			}
		}
	}

	// Any author can raise the priority, staff included.
	dirty := false
	if s.AutoPriority && cmd.Content != "" {
		if a := risk.Analyze(cmd.Content, 0, 0); a.Priority == vo.PriorityHigh && t.RaisePriority(a.Reason, cmd.SentAt) {
			result.PriorityRaised = true
			dirty = true
			uc.logger.Infow("ticket priority raised",
				"ticket_id", t.ID(),
				"reason", a.Reason)
		}
	}

	var smartReply string
	switch {
	case t.IsCreator(cmd.Author.UserID):
		result.Author = AuthorCreator
		t.RecordUserMessage(cmd.SentAt)
		dirty = true
		if s.SmartReplies {
			smartReply, _ = risk.SmartReply(cmd.Content)
		}
	case isStaff:
		result.Author = AuthorStaff
		t.RecordStaffMessage(cmd.SentAt)
		dirty = true
	}

	if dirty {
		if err := uc.ticketRepo.UpdateActivity(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}

	if smartReply != "" {
		if err := uc.notifier.PostSmartReply(ctx, t.ChannelID(), smartReply); err != nil {
			errs = append(errs, err)
		} else {
			result.SmartSent = true
		}
	}

	if err := stderrors.Join(errs...); err != nil {
		uc.logger.Errorw("ticket channel message handled with errors",
			"error", err,
			"ticket_id", t.ID())
		return result, errors.NewUpstreamError("failed to process ticket message", err)
	}
	return result, nil
}

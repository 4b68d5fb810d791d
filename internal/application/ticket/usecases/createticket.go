package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/risk"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const recentTicketWindow = 24 * time.Hour

type CreateTicketCommand struct {
	GuildID     string
	Actor       permission.Actor
	CreatorName string
	Reason      string
	// CategoryID is nil for tickets opened with /ticket create.
	CategoryID *uint
}

type CreateTicketResult struct {
	TicketID  uint   `json:"ticket_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	Priority  string `json:"priority"`
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo ticket.CategoryRepository
	settings     setting.SettingProvider
	policy       *permission.Policy
	gateway      ChannelGateway
	publisher    TicketPublisher
	views        *ViewBuilder
	logger       logger.Interface
	now          func() time.Time
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo ticket.CategoryRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	gateway ChannelGateway,
	publisher TicketPublisher,
	views *ViewBuilder,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		settings:     settings,
		policy:       policy,
		gateway:      gateway,
		publisher:    publisher,
		views:        views,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"guild_id", cmd.GuildID,
		"creator_id", cmd.Actor.UserID)

	resolver := ticketResolver{ticketRepo: uc.ticketRepo, settings: uc.settings, logger: uc.logger}
	s, err := resolver.requireSettings(ctx, cmd.GuildID)
	if err != nil {
		return nil, err
	}
	if !s.IsConfigured() {
		return nil, errors.NewNotConfiguredError("Ticket parent or staff role is missing. Run /ticket setup.")
	}

	if err := authorize(uc.policy, cmd.Actor, ticketSubject(nil, s), permvo.ActionCreate, "You cannot open tickets here."); err != nil {
		return nil, err
	}

	category, err := uc.loadCategory(ctx, cmd)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	priority, reason, err := uc.assessPriority(ctx, cmd, s, now)
	if err != nil {
		return nil, err
	}

	channelID, err := uc.gateway.CreateTicketChannel(ctx, dto.TicketChannelRequest{
		GuildID:     cmd.GuildID,
		ParentID:    s.TicketParentID,
		StaffRoleID: s.StaffRoleID,
		CreatorID:   cmd.Actor.UserID,
		CreatorName: cmd.CreatorName,
		CreatedAt:   now,
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket channel", "error", err, "guild_id", cmd.GuildID)
		return nil, errors.NewUpstreamError("failed to create ticket channel", err)
	}

	var snapshot *ticket.CategorySnapshot
	if category != nil {
		snapshot = category.Snapshot()
	}

	t, err := ticket.NewTicket(cmd.GuildID, channelID, cmd.Actor.UserID, cmd.Reason, priority, reason, snapshot, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket", "error", err, "channel_id", channelID)
		return nil, errors.NewUpstreamError("failed to save ticket", err)
	}

	// The unix-time name only had to be unique until the id existed.
	if err := uc.gateway.RenameChannel(ctx, channelID, ticketChannelName(t.ID())); err != nil {
		uc.logger.Warnw("failed to rename ticket channel", "error", err, "ticket_id", t.ID())
	}

	result := &CreateTicketResult{
		TicketID:  t.ID(),
		ChannelID: channelID,
		Priority:  priority.String(),
	}

	// A failed send leaves the ticket without a message reference.
	view, err := uc.views.Build(ctx, t, s)
	if err != nil {
		uc.logger.Errorw("failed to build ticket view", "error", err, "ticket_id", t.ID())
		return result, errors.NewUpstreamError("ticket created but its message could not be built", err)
	}
	messageID, err := uc.publisher.PublishTicket(ctx, channelID, view)
	if err != nil {
		uc.logger.Errorw("failed to publish ticket message", "error", err, "ticket_id", t.ID())
		return result, errors.NewUpstreamError("ticket created but its message could not be sent", err)
	}
	if err := t.AttachMessage(messageID, uc.now()); err != nil {
		return result, errors.NewUpstreamError("ticket message reference is invalid", err)
	}
	if err := uc.ticketRepo.UpdateActivity(ctx, t); err != nil {
		uc.logger.Errorw("failed to store ticket message reference", "error", err, "ticket_id", t.ID())
		return result, errors.NewUpstreamError("failed to save ticket message reference", err)
	}
	result.MessageID = messageID

	uc.logger.Infow("ticket created successfully",
		"ticket_id", t.ID(),
		"channel_id", channelID,
		"priority", priority.String())

	return result, nil
}

func (uc *CreateTicketUseCase) loadCategory(ctx context.Context, cmd CreateTicketCommand) (*ticket.Category, error) {
	if cmd.CategoryID == nil {
		return nil, nil
	}
	c, err := uc.categoryRepo.GetByID(ctx, cmd.GuildID, *cmd.CategoryID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrCategoryNotFound) {
			return nil, errors.NewNotFoundError("Category not found.")
		}
		return nil, errors.NewUpstreamError("failed to load category", err)
	}
	return c, nil
}

func (uc *CreateTicketUseCase) assessPriority(
	ctx context.Context,
	cmd CreateTicketCommand,
	s *setting.GuildSettings,
	now time.Time,
) (vo.Priority, string, error) {
	if !s.AutoPriority {
		return vo.PriorityNormal, "", nil
	}

	since := now.Add(-recentTicketWindow)
	recent, err := uc.ticketRepo.Count(ctx, ticket.CountFilter{
		GuildID:   cmd.GuildID,
		CreatorID: cmd.Actor.UserID,
		Since:     &since,
	})
	if err != nil {
		uc.logger.Errorw("failed to count recent tickets", "error", err, "creator_id", cmd.Actor.UserID)
		return "", "", errors.NewUpstreamError("failed to count recent tickets", err)
	}

	assessment := risk.Analyze(cmd.Reason, int(recent), 0)
	return assessment.Priority, assessment.Reason, nil
}

func ticketChannelName(id uint) string {
	return fmt.Sprintf("ticket-%d", id)
}

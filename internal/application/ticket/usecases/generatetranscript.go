package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

type GenerateTranscriptCommand struct {
	GuildID   string
	MessageID string
	Actor     permission.Actor
}

type GenerateTranscriptResult struct {
	TicketID uint   `json:"ticket_id"`
	FileName string `json:"file_name"`
	Messages int    `json:"messages"`
}

// GenerateTranscriptUseCase posts an HTML export of the ticket channel into
// the channel itself. The ticket is not modified.
type GenerateTranscriptUseCase struct {
	resolver ticketResolver
	policy   *permission.Policy
	gateway  ChannelGateway
	renderer TranscriptRenderer
	logger   logger.Interface
	now      func() time.Time
}

func NewGenerateTranscriptUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	gateway ChannelGateway,
	renderer TranscriptRenderer,
	logger logger.Interface,
) *GenerateTranscriptUseCase {
	return &GenerateTranscriptUseCase{
		resolver: ticketResolver{ticketRepo: ticketRepo, settings: settings, logger: logger},
		policy:   policy,
		gateway:  gateway,
		renderer: renderer,
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

func (uc *GenerateTranscriptUseCase) Execute(ctx context.Context, cmd GenerateTranscriptCommand) (*GenerateTranscriptResult, error) {
	uc.logger.Infow("executing generate transcript use case",
		"guild_id", cmd.GuildID,
		"message_id", cmd.MessageID)

	t, s, err := uc.resolver.byMessage(ctx, cmd.GuildID, cmd.MessageID)
	if err != nil {
		return nil, err
	}
	if err := authorize(uc.policy, cmd.Actor, ticketSubject(t, s), permvo.ActionTranscript, "You cannot export this ticket."); err != nil {
		return nil, err
	}

	messages, err := uc.gateway.FetchHistory(ctx, t.ChannelID())
	if err != nil {
		uc.logger.Errorw("failed to read channel history", "error", err, "channel_id", t.ChannelID())
		return nil, errors.NewUpstreamError("failed to read the ticket channel", err)
	}

	file, err := uc.renderer.Render(t.ID(), messages, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to render transcript", "error", err, "ticket_id", t.ID())
		return nil, errors.NewUpstreamError("failed to render transcript", err)
	}

	if err := uc.gateway.SendFile(ctx, t.ChannelID(), fmt.Sprintf("Transcript for ticket #%d", t.ID()), *file); err != nil {
		uc.logger.Errorw("failed to upload transcript", "error", err, "ticket_id", t.ID())
		return nil, errors.NewUpstreamError("failed to upload transcript", err)
	}

	uc.logger.Infow("transcript generated successfully",
		"ticket_id", t.ID(),
		"messages", len(messages))

	return &GenerateTranscriptResult{
		TicketID: t.ID(),
		FileName: file.Name,
		Messages: len(messages),
	}, nil
}

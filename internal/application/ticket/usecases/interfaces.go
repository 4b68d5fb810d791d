package usecases

import (
	"context"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type TransitionTicketExecutor interface {
	Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error)
}

type ClaimTicketExecutor = TransitionTicketExecutor

type CloseTicketExecutor = TransitionTicketExecutor

type ReopenTicketExecutor = TransitionTicketExecutor

type PrepareLinkExecutor interface {
	Execute(ctx context.Context, cmd PrepareLinkCommand) (*PrepareLinkResult, error)
}

type LinkTicketsExecutor interface {
	Execute(ctx context.Context, cmd LinkTicketsCommand) (*LinkTicketsResult, error)
}

type GenerateTranscriptExecutor interface {
	Execute(ctx context.Context, cmd GenerateTranscriptCommand) (*GenerateTranscriptResult, error)
}

type HandleChannelMessageExecutor interface {
	Execute(ctx context.Context, cmd HandleChannelMessageCommand) (*HandleChannelMessageResult, error)
}

type GetUserStatsExecutor interface {
	Execute(ctx context.Context, query GetUserStatsQuery) (*dto.UserStatsDTO, error)
}

// ChannelGateway performs channel operations on the chat platform.
type ChannelGateway interface {
	CreateTicketChannel(ctx context.Context, req dto.TicketChannelRequest) (string, error)
	RenameChannel(ctx context.Context, channelID, name string) error
	// SetCreatorAccess grants or revokes the creator's send permission while
	// keeping view, history and attach.
	SetCreatorAccess(ctx context.Context, channelID, creatorID string, canSend bool) error
	// FetchHistory returns every message of the channel, oldest first.
	FetchHistory(ctx context.Context, channelID string) ([]dto.ChannelMessage, error)
	SendFile(ctx context.Context, channelID, content string, file dto.File) error
}

// TicketPublisher renders ticket messages.
type TicketPublisher interface {
	PublishTicket(ctx context.Context, channelID string, view *dto.TicketView) (string, error)
	RefreshTicket(ctx context.Context, channelID, messageID string, view *dto.TicketView) error
}

// ChannelNotifier posts the automatic notices of the message watcher.
type ChannelNotifier interface {
	PostSafetyAlert(ctx context.Context, channelID, staffRoleID string, keywords []string) error
	PostSmartReply(ctx context.Context, channelID, reply string) error
}

type TranscriptRenderer interface {
	Render(ticketID uint, messages []dto.ChannelMessage, generatedAt time.Time) (*dto.File, error)
}

// KeywordWarner records an automatic WARN for flagged keywords and applies
// the escalation check.
type KeywordWarner interface {
	WarnForKeywords(ctx context.Context, guildID, userID string, keywords []string) (timedOut bool, err error)
}

type PrepareOpenExecutor interface {
	Execute(ctx context.Context, cmd PrepareOpenCommand) (*PrepareOpenResult, error)
}

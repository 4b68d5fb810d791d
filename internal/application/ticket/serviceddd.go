package ticket

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/db"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// ServiceDeps are the collaborators of the ticket service.
type ServiceDeps struct {
	TicketRepo     ticket.TicketRepository
	CategoryRepo   ticket.CategoryRepository
	LinkRepo       ticket.LinkRepository
	ModerationRepo moderation.Repository
	TxManager      db.Transactor
	Settings       setting.SettingProvider
	Policy         *permission.Policy
	Gateway        usecases.ChannelGateway
	Publisher      usecases.TicketPublisher
	Notifier       usecases.ChannelNotifier
	Renderer       usecases.TranscriptRenderer
	Warner         usecases.KeywordWarner
	Logger         logger.Interface
}

// ServiceDDD aggregates all ticket-related use cases
type ServiceDDD struct {
	createUC      usecases.CreateTicketExecutor
	prepareOpenUC usecases.PrepareOpenExecutor
	claimUC       usecases.ClaimTicketExecutor
	closeUC       usecases.CloseTicketExecutor
	reopenUC      usecases.ReopenTicketExecutor
	prepareLinkUC usecases.PrepareLinkExecutor
	linkUC        usecases.LinkTicketsExecutor
	transcriptUC  usecases.GenerateTranscriptExecutor
	messageUC     usecases.HandleChannelMessageExecutor
	statsUC       usecases.GetUserStatsExecutor
}

// NewServiceDDD creates a new ticket service
func NewServiceDDD(d ServiceDeps) *ServiceDDD {
	views := usecases.NewViewBuilder(d.TicketRepo, d.LinkRepo, d.ModerationRepo)

	return &ServiceDDD{
		createUC:      usecases.NewCreateTicketUseCase(d.TicketRepo, d.CategoryRepo, d.Settings, d.Policy, d.Gateway, d.Publisher, views, d.Logger),
		prepareOpenUC: usecases.NewPrepareOpenUseCase(d.CategoryRepo, d.Logger),
		claimUC:       usecases.NewClaimTicketUseCase(d.TicketRepo, d.Settings, d.Policy, views, d.Publisher, d.Logger),
		closeUC:       usecases.NewCloseTicketUseCase(d.TicketRepo, d.Settings, d.Policy, views, d.Publisher, d.Gateway, d.Logger),
		reopenUC:      usecases.NewReopenTicketUseCase(d.TicketRepo, d.Settings, d.Policy, views, d.Publisher, d.Gateway, d.Logger),
		prepareLinkUC: usecases.NewPrepareLinkUseCase(d.TicketRepo, d.Settings, d.Policy, d.Logger),
		linkUC:        usecases.NewLinkTicketsUseCase(d.TicketRepo, d.LinkRepo, d.TxManager, d.Settings, d.Policy, views, d.Publisher, d.Logger),
		transcriptUC:  usecases.NewGenerateTranscriptUseCase(d.TicketRepo, d.Settings, d.Policy, d.Gateway, d.Renderer, d.Logger),
		messageUC:     usecases.NewHandleChannelMessageUseCase(d.TicketRepo, d.Settings, d.Warner, d.Notifier, d.Logger),
		statsUC:       usecases.NewGetUserStatsUseCase(d.TicketRepo, d.Settings, d.Policy, d.Logger),
	}
}

func (s *ServiceDDD) Create(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return s.createUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) PrepareOpen(ctx context.Context, cmd usecases.PrepareOpenCommand) (*usecases.PrepareOpenResult, error) {
	return s.prepareOpenUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) Claim(ctx context.Context, cmd usecases.TransitionTicketCommand) (*usecases.TransitionTicketResult, error) {
	return s.claimUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) Close(ctx context.Context, cmd usecases.TransitionTicketCommand) (*usecases.TransitionTicketResult, error) {
	return s.closeUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) Reopen(ctx context.Context, cmd usecases.TransitionTicketCommand) (*usecases.TransitionTicketResult, error) {
	return s.reopenUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) PrepareLink(ctx context.Context, cmd usecases.PrepareLinkCommand) (*usecases.PrepareLinkResult, error) {
	return s.prepareLinkUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) Link(ctx context.Context, cmd usecases.LinkTicketsCommand) (*usecases.LinkTicketsResult, error) {
	return s.linkUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) Transcript(ctx context.Context, cmd usecases.GenerateTranscriptCommand) (*usecases.GenerateTranscriptResult, error) {
	return s.transcriptUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) HandleMessage(ctx context.Context, cmd usecases.HandleChannelMessageCommand) (*usecases.HandleChannelMessageResult, error) {
	return s.messageUC.Execute(ctx, cmd)
}

func (s *ServiceDDD) UserStats(ctx context.Context, query usecases.GetUserStatsQuery) (*dto.UserStatsDTO, error) {
	return s.statsUC.Execute(ctx, query)
}

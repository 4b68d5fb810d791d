package discord

import (
	"context"

	moddto "github.com/swiftticket/swiftticket/internal/application/moderation/dto"
	modusecases "github.com/swiftticket/swiftticket/internal/application/moderation/usecases"
	settingdto "github.com/swiftticket/swiftticket/internal/application/setting/dto"
	settingusecases "github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	ticketdto "github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	ticketusecases "github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
)

// TicketService is implemented by the ticket application ServiceDDD.
type TicketService interface {
	Create(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error)
	PrepareOpen(ctx context.Context, cmd ticketusecases.PrepareOpenCommand) (*ticketusecases.PrepareOpenResult, error)
	Claim(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error)
	Close(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error)
	Reopen(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error)
	PrepareLink(ctx context.Context, cmd ticketusecases.PrepareLinkCommand) (*ticketusecases.PrepareLinkResult, error)
	Link(ctx context.Context, cmd ticketusecases.LinkTicketsCommand) (*ticketusecases.LinkTicketsResult, error)
	Transcript(ctx context.Context, cmd ticketusecases.GenerateTranscriptCommand) (*ticketusecases.GenerateTranscriptResult, error)
	HandleMessage(ctx context.Context, cmd ticketusecases.HandleChannelMessageCommand) (*ticketusecases.HandleChannelMessageResult, error)
	UserStats(ctx context.Context, query ticketusecases.GetUserStatsQuery) (*ticketdto.UserStatsDTO, error)
}

// SettingService is implemented by the setting application ServiceDDD.
type SettingService interface {
	Setup(ctx context.Context, cmd settingusecases.SetupGuildCommand) (*settingdto.SettingsDTO, error)
	GetPanel(ctx context.Context, query settingusecases.GetPanelQuery) (*settingdto.PanelDTO, error)
	GetOpenPanel(ctx context.Context, query settingusecases.GetOpenPanelQuery) (*settingdto.OpenPanelDTO, error)
	SetCategorySlots(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error)
	SetWarnThreshold(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error)
	SetWarnTimeout(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error)
	ToggleFeature(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error)
	ConfigureModeration(ctx context.Context, cmd settingusecases.ConfigureModerationCommand) (*settingusecases.UpdateSettingsResult, error)
	PrepareCategory(ctx context.Context, cmd settingusecases.PrepareCategoryCommand) error
	CreateCategory(ctx context.Context, cmd settingusecases.CreateCategoryCommand) (*settingusecases.CreateCategoryResult, error)
}

// ModerationService is implemented by the moderation application ServiceDDD.
type ModerationService interface {
	LogAction(ctx context.Context, cmd modusecases.LogModActionCommand) (*moddto.ModActionDTO, error)
}

// OwnerLookup resolves the owner of a guild.
type OwnerLookup interface {
	OwnerID(ctx context.Context, guildID string) (string, error)
}

package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	moddto "github.com/swiftticket/swiftticket/internal/application/moderation/dto"
	modusecases "github.com/swiftticket/swiftticket/internal/application/moderation/usecases"
	settingdto "github.com/swiftticket/swiftticket/internal/application/setting/dto"
	settingusecases "github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	ticketdto "github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	ticketusecases "github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

type transitionFunc func(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error)

type mockTicketService struct {
	calls []string

	CreateFunc        func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error)
	PrepareOpenFunc   func(ctx context.Context, cmd ticketusecases.PrepareOpenCommand) (*ticketusecases.PrepareOpenResult, error)
	ClaimFunc         transitionFunc
	CloseFunc         transitionFunc
	ReopenFunc        transitionFunc
	PrepareLinkFunc   func(ctx context.Context, cmd ticketusecases.PrepareLinkCommand) (*ticketusecases.PrepareLinkResult, error)
	LinkFunc          func(ctx context.Context, cmd ticketusecases.LinkTicketsCommand) (*ticketusecases.LinkTicketsResult, error)
	TranscriptFunc    func(ctx context.Context, cmd ticketusecases.GenerateTranscriptCommand) (*ticketusecases.GenerateTranscriptResult, error)
	HandleMessageFunc func(ctx context.Context, cmd ticketusecases.HandleChannelMessageCommand) (*ticketusecases.HandleChannelMessageResult, error)
	UserStatsFunc     func(ctx context.Context, query ticketusecases.GetUserStatsQuery) (*ticketdto.UserStatsDTO, error)
}

func (m *mockTicketService) Create(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error) {
	m.calls = append(m.calls, "create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cmd)
	}
	return &ticketusecases.CreateTicketResult{}, nil
}

func (m *mockTicketService) PrepareOpen(ctx context.Context, cmd ticketusecases.PrepareOpenCommand) (*ticketusecases.PrepareOpenResult, error) {
	m.calls = append(m.calls, "prepare_open")
	if m.PrepareOpenFunc != nil {
		return m.PrepareOpenFunc(ctx, cmd)
	}
	return &ticketusecases.PrepareOpenResult{}, nil
}

func (m *mockTicketService) transition(ctx context.Context, name string, fn transitionFunc, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error) {
	m.calls = append(m.calls, name)
	if fn != nil {
		return fn(ctx, cmd)
	}
	return &ticketusecases.TransitionTicketResult{}, nil
}

func (m *mockTicketService) Claim(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error) {
	return m.transition(ctx, "claim", m.ClaimFunc, cmd)
}

func (m *mockTicketService) Close(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error) {
	return m.transition(ctx, "close", m.CloseFunc, cmd)
}

func (m *mockTicketService) Reopen(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error) {
	return m.transition(ctx, "reopen", m.ReopenFunc, cmd)
}

func (m *mockTicketService) PrepareLink(ctx context.Context, cmd ticketusecases.PrepareLinkCommand) (*ticketusecases.PrepareLinkResult, error) {
	m.calls = append(m.calls, "prepare_link")
	if m.PrepareLinkFunc != nil {
		return m.PrepareLinkFunc(ctx, cmd)
	}
	return &ticketusecases.PrepareLinkResult{}, nil
}

func (m *mockTicketService) Link(ctx context.Context, cmd ticketusecases.LinkTicketsCommand) (*ticketusecases.LinkTicketsResult, error) {
	m.calls = append(m.calls, "link")
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, cmd)
	}
	return &ticketusecases.LinkTicketsResult{}, nil
}

func (m *mockTicketService) Transcript(ctx context.Context, cmd ticketusecases.GenerateTranscriptCommand) (*ticketusecases.GenerateTranscriptResult, error) {
	m.calls = append(m.calls, "transcript")
	if m.TranscriptFunc != nil {
		return m.TranscriptFunc(ctx, cmd)
	}
	return &ticketusecases.GenerateTranscriptResult{}, nil
}

func (m *mockTicketService) HandleMessage(ctx context.Context, cmd ticketusecases.HandleChannelMessageCommand) (*ticketusecases.HandleChannelMessageResult, error) {
	m.calls = append(m.calls, "handle_message")
	if m.HandleMessageFunc != nil {
		return m.HandleMessageFunc(ctx, cmd)
	}
	return &ticketusecases.HandleChannelMessageResult{Ignored: true}, nil
}

func (m *mockTicketService) UserStats(ctx context.Context, query ticketusecases.GetUserStatsQuery) (*ticketdto.UserStatsDTO, error) {
	m.calls = append(m.calls, "user_stats")
	if m.UserStatsFunc != nil {
		return m.UserStatsFunc(ctx, query)
	}
	return &ticketdto.UserStatsDTO{UserID: query.UserID}, nil
}

type updateFunc func(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error)

type mockSettingService struct {
	calls []string

	SetupFunc               func(ctx context.Context, cmd settingusecases.SetupGuildCommand) (*settingdto.SettingsDTO, error)
	GetPanelFunc            func(ctx context.Context, query settingusecases.GetPanelQuery) (*settingdto.PanelDTO, error)
	GetOpenPanelFunc        func(ctx context.Context, query settingusecases.GetOpenPanelQuery) (*settingdto.OpenPanelDTO, error)
	SetCategorySlotsFunc    updateFunc
	SetWarnThresholdFunc    updateFunc
	SetWarnTimeoutFunc      updateFunc
	ToggleFeatureFunc       updateFunc
	ConfigureModerationFunc func(ctx context.Context, cmd settingusecases.ConfigureModerationCommand) (*settingusecases.UpdateSettingsResult, error)
	PrepareCategoryFunc     func(ctx context.Context, cmd settingusecases.PrepareCategoryCommand) error
	CreateCategoryFunc      func(ctx context.Context, cmd settingusecases.CreateCategoryCommand) (*settingusecases.CreateCategoryResult, error)
}

func (m *mockSettingService) Setup(ctx context.Context, cmd settingusecases.SetupGuildCommand) (*settingdto.SettingsDTO, error) {
	m.calls = append(m.calls, "setup")
	if m.SetupFunc != nil {
		return m.SetupFunc(ctx, cmd)
	}
	return &settingdto.SettingsDTO{GuildID: cmd.GuildID}, nil
}

func (m *mockSettingService) GetPanel(ctx context.Context, query settingusecases.GetPanelQuery) (*settingdto.PanelDTO, error) {
	m.calls = append(m.calls, "get_panel")
	if m.GetPanelFunc != nil {
		return m.GetPanelFunc(ctx, query)
	}
	return &settingdto.PanelDTO{Page: query.Page}, nil
}

func (m *mockSettingService) GetOpenPanel(ctx context.Context, query settingusecases.GetOpenPanelQuery) (*settingdto.OpenPanelDTO, error) {
	m.calls = append(m.calls, "get_open_panel")
	if m.GetOpenPanelFunc != nil {
		return m.GetOpenPanelFunc(ctx, query)
	}
	return &settingdto.OpenPanelDTO{}, nil
}

func (m *mockSettingService) update(ctx context.Context, name string, fn updateFunc, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error) {
	m.calls = append(m.calls, name)
	if fn != nil {
		return fn(ctx, cmd)
	}
	return &settingusecases.UpdateSettingsResult{}, nil
}

func (m *mockSettingService) SetCategorySlots(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error) {
	return m.update(ctx, "set_slots", m.SetCategorySlotsFunc, cmd)
}

func (m *mockSettingService) SetWarnThreshold(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error) {
	return m.update(ctx, "set_warn_threshold", m.SetWarnThresholdFunc, cmd)
}

func (m *mockSettingService) SetWarnTimeout(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error) {
	return m.update(ctx, "set_warn_timeout", m.SetWarnTimeoutFunc, cmd)
}

func (m *mockSettingService) ToggleFeature(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error) {
	return m.update(ctx, "toggle", m.ToggleFeatureFunc, cmd)
}

func (m *mockSettingService) ConfigureModeration(ctx context.Context, cmd settingusecases.ConfigureModerationCommand) (*settingusecases.UpdateSettingsResult, error) {
	m.calls = append(m.calls, "configure_moderation")
	if m.ConfigureModerationFunc != nil {
		return m.ConfigureModerationFunc(ctx, cmd)
	}
	return &settingusecases.UpdateSettingsResult{}, nil
}

func (m *mockSettingService) PrepareCategory(ctx context.Context, cmd settingusecases.PrepareCategoryCommand) error {
	m.calls = append(m.calls, "prepare_category")
	if m.PrepareCategoryFunc != nil {
		return m.PrepareCategoryFunc(ctx, cmd)
	}
	return nil
}

func (m *mockSettingService) CreateCategory(ctx context.Context, cmd settingusecases.CreateCategoryCommand) (*settingusecases.CreateCategoryResult, error) {
	m.calls = append(m.calls, "create_category")
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, cmd)
	}
	return &settingusecases.CreateCategoryResult{}, nil
}

type mockModerationService struct {
	LogActionFunc func(ctx context.Context, cmd modusecases.LogModActionCommand) (*moddto.ModActionDTO, error)
}

func (m *mockModerationService) LogAction(ctx context.Context, cmd modusecases.LogModActionCommand) (*moddto.ModActionDTO, error) {
	if m.LogActionFunc != nil {
		return m.LogActionFunc(ctx, cmd)
	}
	return &moddto.ModActionDTO{UserID: cmd.TargetUserID, Action: cmd.Action}, nil
}

type staticOwner string

func (o staticOwner) OwnerID(context.Context, string) (string, error) {
	return string(o), nil
}

// mockSession records every outbound call.
type mockSession struct {
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
	sent      []*discordgo.MessageSend
	sentTo    []string
	edits     []*discordgo.MessageEdit
}

func (m *mockSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	m.responses = append(m.responses, resp)
	return nil
}

func (m *mockSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.followups = append(m.followups, data)
	return &discordgo.Message{ID: "followup"}, nil
}

func (m *mockSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, data)
	m.sentTo = append(m.sentTo, channelID)
	return &discordgo.Message{ID: "sent", ChannelID: channelID}, nil
}

func (m *mockSession) ChannelMessageEditComplex(e *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.edits = append(m.edits, e)
	return &discordgo.Message{ID: e.ID}, nil
}

func (m *mockSession) outbound() int {
	return len(m.responses) + len(m.followups) + len(m.sent) + len(m.edits)
}

type harness struct {
	router     *Router
	tickets    *mockTicketService
	settings   *mockSettingService
	moderation *mockModerationService
	session    *mockSession
}

func newHarness() *harness {
	h := &harness{
		tickets:    &mockTicketService{},
		settings:   &mockSettingService{},
		moderation: &mockModerationService{},
		session:    &mockSession{},
	}
	h.router = NewRouter(&Container{
		Tickets:    h.tickets,
		Settings:   h.settings,
		Moderation: h.moderation,
		Owners:     staticOwner("owner-1"),
		Session:    h.session,
		Logger:     logger.NewNopLogger(),
	})
	return h
}

func member(userID string, perms int64, roles ...string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: userID, Username: userID}, Roles: roles, Permissions: perms}
}

func componentInteraction(customID string, values ...string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:      discordgo.InteractionMessageComponent,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		Message:   &discordgo.Message{ID: "msg-1"},
		Member:    member("user-1", 0, "role-staff"),
		Data:      discordgo.MessageComponentInteractionData{CustomID: customID, Values: values},
	}
}

func modalInteraction(customID string, fields map[string]string) *discordgo.Interaction {
	rows := make([]discordgo.MessageComponent, 0, len(fields))
	for id, value := range fields {
		rows = append(rows, &discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			&discordgo.TextInput{CustomID: id, Value: value},
		}})
	}
	return &discordgo.Interaction{
		Type:      discordgo.InteractionModalSubmit,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		Member:    member("user-1", discordgo.PermissionManageGuild),
		Data:      discordgo.ModalSubmitInteractionData{CustomID: customID, Components: rows},
	}
}

func slashInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		Member:    member("owner-1", 0),
		Data:      discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
	}
}

package usecases

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	permissioninfra "github.com/swiftticket/swiftticket/internal/infrastructure/permission"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// =====================================================================
// Repositories
// =====================================================================

type mockTicketRepository struct {
	CreateFunc             func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc            func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByMessageIDFunc     func(ctx context.Context, messageID string) (*ticket.Ticket, error)
	GetByChannelIDFunc     func(ctx context.Context, channelID string) (*ticket.Ticket, error)
	UpdateStatusFunc       func(ctx context.Context, t *ticket.Ticket, expected vo.TicketStatus) error
	UpdateActivityFunc     func(ctx context.Context, t *ticket.Ticket) error
	CountFunc              func(ctx context.Context, filter ticket.CountFilter) (int64, error)
	ListByCreatorSinceFunc func(ctx context.Context, guildID, creatorID string, since time.Time) ([]*ticket.Ticket, error)
	GetCreatorHistoryFunc  func(ctx context.Context, guildID, creatorID string) (*ticket.CreatorHistory, error)
	GetUserStatsFunc       func(ctx context.Context, guildID, userID string) (*ticket.UserStats, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) GetByMessageID(ctx context.Context, messageID string) (*ticket.Ticket, error) {
	if m.GetByMessageIDFunc != nil {
		return m.GetByMessageIDFunc(ctx, messageID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) GetByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	if m.GetByChannelIDFunc != nil {
		return m.GetByChannelIDFunc(ctx, channelID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket, expected vo.TicketStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t, expected)
	}
	return nil
}

func (m *mockTicketRepository) UpdateActivity(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateActivityFunc != nil {
		return m.UpdateActivityFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Count(ctx context.Context, filter ticket.CountFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockTicketRepository) ListByCreatorSince(ctx context.Context, guildID, creatorID string, since time.Time) ([]*ticket.Ticket, error) {
	if m.ListByCreatorSinceFunc != nil {
		return m.ListByCreatorSinceFunc(ctx, guildID, creatorID, since)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetCreatorHistory(ctx context.Context, guildID, creatorID string) (*ticket.CreatorHistory, error) {
	if m.GetCreatorHistoryFunc != nil {
		return m.GetCreatorHistoryFunc(ctx, guildID, creatorID)
	}
	return &ticket.CreatorHistory{}, nil
}

func (m *mockTicketRepository) GetUserStats(ctx context.Context, guildID, userID string) (*ticket.UserStats, error) {
	if m.GetUserStatsFunc != nil {
		return m.GetUserStatsFunc(ctx, guildID, userID)
	}
	return &ticket.UserStats{}, nil
}

type mockCategoryRepository struct {
	CreateFunc       func(ctx context.Context, c *ticket.Category) error
	GetByIDFunc      func(ctx context.Context, guildID string, id uint) (*ticket.Category, error)
	ListByGuildFunc  func(ctx context.Context, guildID string) ([]*ticket.Category, error)
	CountByGuildFunc func(ctx context.Context, guildID string) (int64, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *ticket.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, guildID string, id uint) (*ticket.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, guildID, id)
	}
	return nil, ticket.ErrCategoryNotFound
}

func (m *mockCategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*ticket.Category, error) {
	if m.ListByGuildFunc != nil {
		return m.ListByGuildFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) CountByGuild(ctx context.Context, guildID string) (int64, error) {
	if m.CountByGuildFunc != nil {
		return m.CountByGuildFunc(ctx, guildID)
	}
	return 0, nil
}

type mockLinkRepository struct {
	CreatePairFunc          func(ctx context.Context, links []*ticket.Link) error
	ListLinkedTicketIDsFunc func(ctx context.Context, ticketID uint) ([]uint, error)
}

func (m *mockLinkRepository) CreatePair(ctx context.Context, links []*ticket.Link) error {
	if m.CreatePairFunc != nil {
		return m.CreatePairFunc(ctx, links)
	}
	return nil
}

func (m *mockLinkRepository) ListLinkedTicketIDs(ctx context.Context, ticketID uint) ([]uint, error) {
	if m.ListLinkedTicketIDsFunc != nil {
		return m.ListLinkedTicketIDsFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockModerationRepository struct {
	CreateFunc     func(ctx context.Context, a *moderation.ModAction) error
	CountFunc      func(ctx context.Context, guildID, userID string, action moderation.ActionType) (int64, error)
	GetSummaryFunc func(ctx context.Context, guildID, userID string) (*moderation.Summary, error)
}

func (m *mockModerationRepository) Create(ctx context.Context, a *moderation.ModAction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockModerationRepository) Count(ctx context.Context, guildID, userID string, action moderation.ActionType) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, guildID, userID, action)
	}
	return 0, nil
}

func (m *mockModerationRepository) GetSummary(ctx context.Context, guildID, userID string) (*moderation.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, guildID, userID)
	}
	return &moderation.Summary{}, nil
}

type mockSettingProvider struct {
	GetFunc           func(ctx context.Context, guildID string) (*setting.GuildSettings, error)
	GetOrDefaultsFunc func(ctx context.Context, guildID string) (*setting.GuildSettings, error)
	SaveFunc          func(ctx context.Context, s *setting.GuildSettings) error
}

func (m *mockSettingProvider) Get(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, guildID)
	}
	return nil, setting.ErrSettingsNotFound
}

func (m *mockSettingProvider) GetOrDefaults(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	if m.GetOrDefaultsFunc != nil {
		return m.GetOrDefaultsFunc(ctx, guildID)
	}
	d := setting.Defaults(guildID, "UTC")
	return &d, nil
}

func (m *mockSettingProvider) Save(ctx context.Context, s *setting.GuildSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// =====================================================================
// Chat platform ports
// =====================================================================

type mockChannelGateway struct {
	CreateTicketChannelFunc func(ctx context.Context, req dto.TicketChannelRequest) (string, error)
	RenameChannelFunc       func(ctx context.Context, channelID, name string) error
	SetCreatorAccessFunc    func(ctx context.Context, channelID, creatorID string, canSend bool) error
	FetchHistoryFunc        func(ctx context.Context, channelID string) ([]dto.ChannelMessage, error)
	SendFileFunc            func(ctx context.Context, channelID, content string, file dto.File) error
}

func (m *mockChannelGateway) CreateTicketChannel(ctx context.Context, req dto.TicketChannelRequest) (string, error) {
	if m.CreateTicketChannelFunc != nil {
		return m.CreateTicketChannelFunc(ctx, req)
	}
	return "chan-1", nil
}

func (m *mockChannelGateway) RenameChannel(ctx context.Context, channelID, name string) error {
	if m.RenameChannelFunc != nil {
		return m.RenameChannelFunc(ctx, channelID, name)
	}
	return nil
}

func (m *mockChannelGateway) SetCreatorAccess(ctx context.Context, channelID, creatorID string, canSend bool) error {
	if m.SetCreatorAccessFunc != nil {
		return m.SetCreatorAccessFunc(ctx, channelID, creatorID, canSend)
	}
	return nil
}

func (m *mockChannelGateway) FetchHistory(ctx context.Context, channelID string) ([]dto.ChannelMessage, error) {
	if m.FetchHistoryFunc != nil {
		return m.FetchHistoryFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *mockChannelGateway) SendFile(ctx context.Context, channelID, content string, file dto.File) error {
	if m.SendFileFunc != nil {
		return m.SendFileFunc(ctx, channelID, content, file)
	}
	return nil
}

type mockTicketPublisher struct {
	PublishTicketFunc func(ctx context.Context, channelID string, view *dto.TicketView) (string, error)
	RefreshTicketFunc func(ctx context.Context, channelID, messageID string, view *dto.TicketView) error
}

func (m *mockTicketPublisher) PublishTicket(ctx context.Context, channelID string, view *dto.TicketView) (string, error) {
	if m.PublishTicketFunc != nil {
		return m.PublishTicketFunc(ctx, channelID, view)
	}
	return "msg-1", nil
}

func (m *mockTicketPublisher) RefreshTicket(ctx context.Context, channelID, messageID string, view *dto.TicketView) error {
	if m.RefreshTicketFunc != nil {
		return m.RefreshTicketFunc(ctx, channelID, messageID, view)
	}
	return nil
}

type mockChannelNotifier struct {
	PostSafetyAlertFunc func(ctx context.Context, channelID, staffRoleID string, keywords []string) error
	PostSmartReplyFunc  func(ctx context.Context, channelID, reply string) error
}

func (m *mockChannelNotifier) PostSafetyAlert(ctx context.Context, channelID, staffRoleID string, keywords []string) error {
	if m.PostSafetyAlertFunc != nil {
		return m.PostSafetyAlertFunc(ctx, channelID, staffRoleID, keywords)
	}
	return nil
}

func (m *mockChannelNotifier) PostSmartReply(ctx context.Context, channelID, reply string) error {
	if m.PostSmartReplyFunc != nil {
		return m.PostSmartReplyFunc(ctx, channelID, reply)
	}
	return nil
}

type mockTranscriptRenderer struct {
	RenderFunc func(ticketID uint, messages []dto.ChannelMessage, generatedAt time.Time) (*dto.File, error)
}

func (m *mockTranscriptRenderer) Render(ticketID uint, messages []dto.ChannelMessage, generatedAt time.Time) (*dto.File, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ticketID, messages, generatedAt)
	}
	return &dto.File{Name: "transcript.html", ContentType: "text/html", Reader: io.NopCloser(strings.NewReader("<html></html>"))}, nil
}

type mockKeywordWarner struct {
	WarnForKeywordsFunc func(ctx context.Context, guildID, userID string, keywords []string) (bool, error)
}

func (m *mockKeywordWarner) WarnForKeywords(ctx context.Context, guildID, userID string, keywords []string) (bool, error) {
	if m.WarnForKeywordsFunc != nil {
		return m.WarnForKeywordsFunc(ctx, guildID, userID, keywords)
	}
	return false, nil
}

// =====================================================================
// Logger
// =====================================================================

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

// =====================================================================
// Fixtures
// =====================================================================

const (
	testGuildID   = "guild-1"
	testStaffRole = "role-staff"
	testCreatorID = "user-creator"
	testStaffID   = "user-staff"
	testMessageID = "msg-1"
	testChannelID = "chan-1"
)

var testCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPolicy(t *testing.T) *permission.Policy {
	t.Helper()
	e, err := permissioninfra.NewDefaultMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	return permission.NewPolicy(e)
}

func configuredSettings() *setting.GuildSettings {
	s := setting.Defaults(testGuildID, "UTC")
	s.TicketParentID = "parent-1"
	s.StaffRoleID = testStaffRole
	return &s
}

func settingsProvider(s *setting.GuildSettings) *mockSettingProvider {
	return &mockSettingProvider{
		GetFunc: func(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
			return s, nil
		},
		GetOrDefaultsFunc: func(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
			return s, nil
		},
	}
}

func newTestTicket(t *testing.T, status vo.TicketStatus, claimedBy string) *ticket.Ticket {
	t.Helper()
	st := ticket.State{
		ID:        10,
		GuildID:   testGuildID,
		ChannelID: testChannelID,
		MessageID: testMessageID,
		CreatorID: testCreatorID,
		Query:     "login broken",
		Status:    status,
		Priority:  vo.PriorityNormal,
		ClaimedBy: claimedBy,
		CreatedAt: testCreatedAt,
		UpdatedAt: testCreatedAt,
	}
	if claimedBy != "" {
		at := testCreatedAt.Add(time.Minute)
		st.ClaimedAt = &at
	}
	tk, err := ticket.ReconstructTicket(st)
	require.NoError(t, err)
	return tk
}

func staffActor() permission.Actor {
	return permission.Actor{UserID: testStaffID, RoleIDs: []string{testStaffRole}}
}

func creatorActor() permission.Actor {
	return permission.Actor{UserID: testCreatorID}
}

func strangerActor() permission.Actor {
	return permission.Actor{UserID: "user-stranger"}
}

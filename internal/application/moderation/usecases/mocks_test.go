package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	permissioninfra "github.com/swiftticket/swiftticket/internal/infrastructure/permission"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const (
	testGuildID  = "guild-1"
	testTargetID = "user-7"
	testBotID    = "bot-1"
)

// memoryModRepository stores actions in a slice and counts from it.
type memoryModRepository struct {
	mu         sync.Mutex
	actions    []*moderation.ModAction
	CreateFunc func(ctx context.Context, action *moderation.ModAction) error
	CountFunc  func(ctx context.Context, guildID, userID string, action moderation.ActionType) (int64, error)
}

func (m *memoryModRepository) Create(ctx context.Context, action *moderation.ModAction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, action)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	action.SetID(uint(len(m.actions) + 1))
	m.actions = append(m.actions, action)
	return nil
}

func (m *memoryModRepository) Count(ctx context.Context, guildID, userID string, action moderation.ActionType) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, guildID, userID, action)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.actions {
		if a.GuildID() == guildID && a.UserID() == userID && a.Action() == action {
			n++
		}
	}
	return n, nil
}

func (m *memoryModRepository) GetSummary(ctx context.Context, guildID, userID string) (*moderation.Summary, error) {
	warns, _ := m.Count(ctx, guildID, userID, moderation.ActionWarn)
	mutes, _ := m.Count(ctx, guildID, userID, moderation.ActionMute)
	bans, _ := m.Count(ctx, guildID, userID, moderation.ActionBan)
	return &moderation.Summary{Warnings: warns, Mutes: mutes, Bans: bans}, nil
}

type timeoutCall struct {
	GuildID  string
	UserID   string
	Duration time.Duration
	Reason   string
}

type mockMemberModerator struct {
	calls             []timeoutCall
	TimeoutMemberFunc func(ctx context.Context, guildID, userID string, d time.Duration, reason string) error
}

func (m *mockMemberModerator) TimeoutMember(ctx context.Context, guildID, userID string, d time.Duration, reason string) error {
	m.calls = append(m.calls, timeoutCall{GuildID: guildID, UserID: userID, Duration: d, Reason: reason})
	if m.TimeoutMemberFunc != nil {
		return m.TimeoutMemberFunc(ctx, guildID, userID, d, reason)
	}
	return nil
}

type mockSettingProvider struct {
	settings *setting.GuildSettings
}

func (m *mockSettingProvider) Get(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	if m.settings == nil {
		return nil, setting.ErrSettingsNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *mockSettingProvider) GetOrDefaults(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	if m.settings == nil {
		d := setting.Defaults(guildID, "UTC")
		return &d, nil
	}
	return m.Get(ctx, guildID)
}

func (m *mockSettingProvider) Save(ctx context.Context, s *setting.GuildSettings) error {
	m.settings = s
	return nil
}

// configuredSettings returns a set-up guild with the given threshold.
func configuredSettings(threshold, minutes int) *mockSettingProvider {
	s := setting.Defaults(testGuildID, "UTC")
	_ = s.Configure("parent-1", "role-staff", "UTC")
	s.WarnThreshold = threshold
	s.WarnTimeoutMinutes = minutes
	return &mockSettingProvider{settings: &s}
}

func newTestPolicy(t *testing.T) *permission.Policy {
	t.Helper()
	e, err := permissioninfra.NewDefaultMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	return permission.NewPolicy(e)
}

func adminActor() permission.Actor {
	return permission.Actor{UserID: "admin-1", IsAdmin: true}
}

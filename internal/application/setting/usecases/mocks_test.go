package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	permissioninfra "github.com/swiftticket/swiftticket/internal/infrastructure/permission"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// memorySettingRepository keeps stored rows in a map.
type memorySettingRepository struct {
	rows    map[string]setting.Stored
	GetFunc func(ctx context.Context, guildID string) (*setting.Stored, error)
	upserts int
}

func newMemorySettingRepository() *memorySettingRepository {
	return &memorySettingRepository{rows: make(map[string]setting.Stored)}
}

func (m *memorySettingRepository) Get(ctx context.Context, guildID string) (*setting.Stored, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, guildID)
	}
	row, ok := m.rows[guildID]
	if !ok {
		return nil, setting.ErrSettingsNotFound
	}
	return &row, nil
}

func (m *memorySettingRepository) Upsert(ctx context.Context, s *setting.Stored) error {
	m.upserts++
	m.rows[s.GuildID] = *s
	return nil
}

type mockCategoryRepository struct {
	categories []*ticket.Category
	CreateFunc func(ctx context.Context, c *ticket.Category) error
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *ticket.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	if err := c.SetID(uint(len(m.categories) + 1)); err != nil {
		return err
	}
	m.categories = append(m.categories, c)
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, guildID string, id uint) (*ticket.Category, error) {
	for _, c := range m.categories {
		if c.ID() == id && c.GuildID() == guildID {
			return c, nil
		}
	}
	return nil, ticket.ErrCategoryNotFound
}

func (m *mockCategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*ticket.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryRepository) CountByGuild(ctx context.Context, guildID string) (int64, error) {
	return int64(len(m.categories)), nil
}

const testGuildID = "guild-1"

func newTestPolicy(t *testing.T) *permission.Policy {
	t.Helper()
	e, err := permissioninfra.NewDefaultMemoryEnforcer(logger.NewNopLogger())
	require.NoError(t, err)
	return permission.NewPolicy(e)
}

func adminActor() permission.Actor {
	return permission.Actor{UserID: "admin", IsAdmin: true}
}

func memberActor() permission.Actor {
	return permission.Actor{UserID: "member", RoleIDs: []string{"role-staff"}}
}

func newTestProvider(repo setting.Repository) *SettingProvider {
	return NewSettingProvider(repo, SettingProviderConfig{Timezone: "UTC"}, logger.NewNopLogger())
}

// configure stores a completed setup for testGuildID.
func configure(t *testing.T, provider *SettingProvider) {
	t.Helper()
	s := setting.Defaults(testGuildID, "UTC")
	require.NoError(t, s.Configure("parent-1", "role-staff", "UTC"))
	require.NoError(t, provider.Save(context.Background(), &s))
}

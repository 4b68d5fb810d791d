package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

func newUpdateFixture(t *testing.T, configured bool) (*UpdateSettingsUseCase, *memorySettingRepository) {
	repo := newMemorySettingRepository()
	provider := newTestProvider(repo)
	if configured {
		configure(t, provider)
	}
	return NewUpdateSettingsUseCase(provider, &mockCategoryRepository{}, newTestPolicy(t), logger.NewNopLogger()), repo
}

func TestUpdateSettingsUseCase_SetCategorySlots(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "1", want: 1},
		{value: "35", want: 35},
		{value: "0", wantErr: true},
		{value: "36", wantErr: true},
		{value: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			uc, repo := newUpdateFixture(t, true)

			result, err := uc.SetCategorySlots(context.Background(), UpdateSettingsCommand{
				GuildID: testGuildID,
				Actor:   adminActor(),
				Value:   tt.value,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidationError(err))
				assert.Equal(t, "Choose between 1 and 35.", apperrors.GetAppError(err).Message)
				assert.Equal(t, 1, repo.upserts)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Settings.CategorySlots)
			require.NotNil(t, result.Panel)
			assert.Equal(t, 1, result.Panel.Page)
			assert.Equal(t, tt.want, *repo.rows[testGuildID].CategorySlots)
		})
	}
}

func TestUpdateSettingsUseCase_RequiresSetup(t *testing.T) {
	uc, _ := newUpdateFixture(t, false)

	_, err := uc.SetCategorySlots(context.Background(), UpdateSettingsCommand{GuildID: testGuildID, Actor: adminActor(), Value: "3"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotConfiguredError(err))
}

func TestUpdateSettingsUseCase_RequiresAdmin(t *testing.T) {
	uc, repo := newUpdateFixture(t, true)
	cmd := UpdateSettingsCommand{GuildID: testGuildID, Actor: memberActor(), Value: "smart"}

	_, err := uc.ToggleFeature(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Equal(t, "Admin only.", apperrors.GetAppError(err).Message)
	assert.Equal(t, 1, repo.upserts)
}

func TestUpdateSettingsUseCase_ToggleFeature(t *testing.T) {
	uc, repo := newUpdateFixture(t, true)
	ctx := context.Background()

	result, err := uc.ToggleFeature(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: adminActor(), Value: "ai"})
	require.NoError(t, err)
	assert.False(t, result.Settings.AISuggestions)
	assert.True(t, result.Settings.SmartReplies)
	assert.Equal(t, 2, result.Panel.Page)
	assert.False(t, *repo.rows[testGuildID].AISuggestions)

	result, err = uc.ToggleFeature(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: adminActor(), Value: "ai"})
	require.NoError(t, err)
	assert.True(t, result.Settings.AISuggestions)

	_, err = uc.ToggleFeature(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: adminActor(), Value: "nope"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateSettingsUseCase_WarnSettings(t *testing.T) {
	uc, repo := newUpdateFixture(t, true)
	ctx := context.Background()
	owner := adminActor()
	owner.IsAdmin = false
	owner.IsOwner = true

	result, err := uc.SetWarnThreshold(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: owner, Value: " 5 "})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Settings.WarnThreshold)
	assert.Nil(t, result.Panel)

	result, err = uc.SetWarnTimeout(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: owner, Value: "60"})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Settings.WarnTimeoutMinutes)

	for _, bad := range []string{"0", "abc", ""} {
		_, err = uc.SetWarnThreshold(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: owner, Value: bad})
		assert.True(t, apperrors.IsValidationError(err), bad)
	}
	_, err = uc.SetWarnTimeout(ctx, UpdateSettingsCommand{GuildID: testGuildID, Actor: owner, Value: "40321"})
	assert.True(t, apperrors.IsValidationError(err))

	assert.Equal(t, 5, *repo.rows[testGuildID].WarnThreshold)
	assert.Equal(t, 60, *repo.rows[testGuildID].WarnTimeoutMinutes)
}

func TestUpdateSettingsUseCase_ConfigureModeration(t *testing.T) {
	uc, repo := newUpdateFixture(t, true)

	result, err := uc.ConfigureModeration(context.Background(), ConfigureModerationCommand{
		GuildID:        testGuildID,
		Actor:          adminActor(),
		WarnThreshold:  4,
		TimeoutMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Settings.WarnThreshold)
	assert.Equal(t, 30, result.Settings.WarnTimeoutMinutes)

	_, err = uc.ConfigureModeration(context.Background(), ConfigureModerationCommand{
		GuildID:        testGuildID,
		Actor:          adminActor(),
		WarnThreshold:  2,
		TimeoutMinutes: 0,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 4, *repo.rows[testGuildID].WarnThreshold)
}

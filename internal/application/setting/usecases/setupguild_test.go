package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/domain/setting"
	apperrors "github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

func TestSetupGuildUseCase_Execute(t *testing.T) {
	repo := newMemorySettingRepository()
	provider := newTestProvider(repo)
	uc := NewSetupGuildUseCase(provider, newTestPolicy(t), logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), SetupGuildCommand{
		GuildID:     testGuildID,
		Actor:       adminActor(),
		ParentID:    "parent-1",
		StaffRoleID: "role-staff",
		Timezone:    "Asia/Tokyo",
	})

	require.NoError(t, err)
	assert.Equal(t, "parent-1", out.TicketParentID)
	assert.Equal(t, "role-staff", out.StaffRoleID)
	assert.Equal(t, "Asia/Tokyo", out.Timezone)
	assert.Equal(t, setting.DefaultWarnThreshold, out.WarnThreshold)
}

func TestSetupGuildUseCase_Execute_KeepsTunables(t *testing.T) {
	repo := newMemorySettingRepository()
	provider := newTestProvider(repo)
	s := setting.Defaults(testGuildID, "Asia/Tokyo")
	s.WarnThreshold = 7
	s.SmartReplies = false
	require.NoError(t, provider.Save(context.Background(), &s))

	uc := NewSetupGuildUseCase(provider, newTestPolicy(t), logger.NewNopLogger())
	out, err := uc.Execute(context.Background(), SetupGuildCommand{
		GuildID:     testGuildID,
		Actor:       adminActor(),
		ParentID:    "parent-2",
		StaffRoleID: "role-2",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, out.WarnThreshold)
	assert.False(t, out.SmartReplies)
	assert.Equal(t, "Asia/Tokyo", out.Timezone)
}

func TestSetupGuildUseCase_Execute_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SetupGuildCommand
		wantErr func(error) bool
	}{
		{
			name:    "not admin",
			cmd:     SetupGuildCommand{Actor: memberActor(), ParentID: "p", StaffRoleID: "r"},
			wantErr: apperrors.IsForbiddenError,
		},
		{
			name:    "channel without category",
			cmd:     SetupGuildCommand{Actor: adminActor(), StaffRoleID: "r"},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "bad timezone",
			cmd:     SetupGuildCommand{Actor: adminActor(), ParentID: "p", StaffRoleID: "r", Timezone: "Mars/Olympus"},
			wantErr: apperrors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemorySettingRepository()
			uc := NewSetupGuildUseCase(newTestProvider(repo), newTestPolicy(t), logger.NewNopLogger())
			tt.cmd.GuildID = testGuildID

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
			assert.Zero(t, repo.upserts)
		})
	}
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	apperrors "github.com/swiftticket/swiftticket/internal/shared/errors"
)

func TestGetUserStatsUseCase_Execute(t *testing.T) {
	now := testCreatedAt.Add(100 * 24 * time.Hour)
	ages := []time.Duration{time.Hour, 5 * 24 * time.Hour, 20 * 24 * time.Hour, 80 * 24 * time.Hour}

	var recent []*ticket.Ticket
	for i, age := range ages {
		tk, err := ticket.ReconstructTicket(ticket.State{
			ID:        uint(i + 1),
			GuildID:   testGuildID,
			CreatorID: testCreatorID,
			Status:    vo.StatusOpen,
			Priority:  vo.PriorityNormal,
			CreatedAt: now.Add(-age),
		})
		require.NoError(t, err)
		recent = append(recent, tk)
	}
	last := now.Add(-time.Hour)

	repo := &mockTicketRepository{
		GetUserStatsFunc: func(ctx context.Context, guildID, userID string) (*ticket.UserStats, error) {
			return &ticket.UserStats{Created: 5, Claimed: 2, Closed: 1}, nil
		},
		GetCreatorHistoryFunc: func(ctx context.Context, guildID, creatorID string) (*ticket.CreatorHistory, error) {
			return &ticket.CreatorHistory{Total: 5, LastSupportAt: &last}, nil
		},
		ListByCreatorSinceFunc: func(ctx context.Context, guildID, creatorID string, since time.Time) ([]*ticket.Ticket, error) {
			assert.Equal(t, now.Add(-statsWindow), since)
			return recent, nil
		},
	}

	uc := NewGetUserStatsUseCase(repo, settingsProvider(configuredSettings()), newTestPolicy(t), &mockLogger{})
	uc.now = func() time.Time { return now }

	stats, err := uc.Execute(context.Background(), GetUserStatsQuery{GuildID: testGuildID, UserID: testCreatorID, Actor: strangerActor()})

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(5), stats.Created)
	assert.Equal(t, int64(2), stats.Claimed)
	assert.Equal(t, int64(1), stats.Closed)
	assert.Equal(t, &last, stats.LastActivity)
	assert.Equal(t, 2, stats.Last7Days)
	assert.Equal(t, 3, stats.Last30Days)
	assert.Equal(t, 4, stats.Last90Days)
	assert.Equal(t, "UTC", stats.Timezone)
}

func TestGetUserStatsUseCase_Execute_NotConfigured(t *testing.T) {
	uc := NewGetUserStatsUseCase(&mockTicketRepository{}, &mockSettingProvider{}, newTestPolicy(t), &mockLogger{})

	_, err := uc.Execute(context.Background(), GetUserStatsQuery{GuildID: testGuildID, UserID: testCreatorID})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotConfiguredError(err))
}

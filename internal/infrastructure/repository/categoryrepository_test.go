package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
)

func TestCategoryRepository(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Billing", "Reports", "Appeals"} {
		c, err := ticket.NewCategory("guild-1", name, name+" help", baseTime)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, c))
	}
	other, err := ticket.NewCategory("guild-2", "Other", "", baseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByGuild(ctx, "guild-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Billing", list[0].Name())
	assert.Equal(t, "Appeals", list[2].Name())

	count, err := repo.CountByGuild(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	found, err := repo.GetByID(ctx, "guild-1", list[1].ID())
	require.NoError(t, err)
	assert.Equal(t, "Reports help", found.Description())

	_, err = repo.GetByID(ctx, "guild-1", other.ID())
	assert.ErrorIs(t, err, ticket.ErrCategoryNotFound)
}

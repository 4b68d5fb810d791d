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

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	repo := newMemorySettingRepository()
	provider := newTestProvider(repo)
	s := setting.Defaults(testGuildID, "UTC")
	s.CategorySlots = 2
	require.NoError(t, provider.Save(context.Background(), &s))

	categories := &mockCategoryRepository{}
	uc := NewCreateCategoryUseCase(provider, categories, newTestPolicy(t), logger.NewNopLogger())
	ctx := context.Background()

	result, err := uc.Execute(ctx, CreateCategoryCommand{GuildID: testGuildID, Actor: adminActor(), Name: "  Billing ", Description: "Invoices"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.Category.ID)
	assert.Equal(t, "Billing", result.Category.Name)
	assert.Len(t, result.Panel.Categories, 1)
	assert.Equal(t, 1, result.Panel.Page)

	_, err = uc.Execute(ctx, CreateCategoryCommand{GuildID: testGuildID, Actor: adminActor(), Name: "Bugs"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateCategoryCommand{GuildID: testGuildID, Actor: adminActor(), Name: "Other"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Len(t, categories.categories, 2)
}

func TestCreateCategoryUseCase_Execute_Rejects(t *testing.T) {
	uc := NewCreateCategoryUseCase(newTestProvider(newMemorySettingRepository()), &mockCategoryRepository{}, newTestPolicy(t), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateCategoryCommand{GuildID: testGuildID, Actor: adminActor(), Name: "   "})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateCategoryCommand{GuildID: testGuildID, Actor: memberActor(), Name: "Billing"})
	assert.True(t, apperrors.IsForbiddenError(err))

	assert.True(t, apperrors.IsForbiddenError(uc.Prepare(context.Background(), PrepareCategoryCommand{GuildID: testGuildID, Actor: memberActor()})))
	assert.NoError(t, uc.Prepare(context.Background(), PrepareCategoryCommand{GuildID: testGuildID, Actor: adminActor()}))
}

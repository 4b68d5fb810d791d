package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/setting/dto"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// PrepareCategoryCommand is the "Add Category" button press.
type PrepareCategoryCommand struct {
	GuildID string
	Actor   permission.Actor
}

type CreateCategoryCommand struct {
	GuildID     string
	Actor       permission.Actor
	Name        string
	Description string
}

type CreateCategoryResult struct {
	Category dto.CategoryDTO `json:"category"`
	Panel    dto.PanelDTO    `json:"panel"`
}

type CreateCategoryUseCase struct {
	settings     setting.SettingProvider
	categoryRepo ticket.CategoryRepository
	policy       *permission.Policy
	logger       logger.Interface
	now          func() time.Time
}

func NewCreateCategoryUseCase(
	settings setting.SettingProvider,
	categoryRepo ticket.CategoryRepository,
	policy *permission.Policy,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		settings:     settings,
		categoryRepo: categoryRepo,
		policy:       policy,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

// Prepare checks the actor before the category modal opens.
func (uc *CreateCategoryUseCase) Prepare(ctx context.Context, cmd PrepareCategoryCommand) error {
	return requireAdmin(uc.policy, cmd.Actor)
}

// Execute refuses a new category once the guild has category_slots of them.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	uc.logger.Infow("executing create category use case",
		"guild_id", cmd.GuildID,
		"actor_id", cmd.Actor.UserID)

	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}

	s, err := uc.settings.GetOrDefaults(ctx, cmd.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}

	category, err := ticket.NewCategory(cmd.GuildID, cmd.Name, cmd.Description, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	count, err := uc.categoryRepo.CountByGuild(ctx, cmd.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to count categories", err)
	}
	if count >= int64(s.CategorySlots) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("All %d category slots are used. Raise the limit first.", s.CategorySlots))
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		uc.logger.Errorw("failed to create category", "error", err, "guild_id", cmd.GuildID)
		return nil, errors.NewUpstreamError("failed to save category", err)
	}

	categories, err := uc.categoryRepo.ListByGuild(ctx, cmd.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load categories", err)
	}

	uc.logger.Infow("category created successfully",
		"guild_id", cmd.GuildID,
		"category_id", category.ID())

	created := dto.ToCategoryDTOs([]*ticket.Category{category})[0]
	return &CreateCategoryResult{
		Category: created,
		Panel: dto.PanelDTO{
			Page:       PanelPageCategories,
			Settings:   dto.ToSettingsDTO(s),
			Categories: dto.ToCategoryDTOs(categories),
		},
	}, nil
}

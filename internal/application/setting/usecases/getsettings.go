package usecases

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/application/setting/dto"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const (
	PanelPageCategories = 1
	PanelPageAutomation = 2
)

type GetPanelQuery struct {
	GuildID string
	Actor   permission.Actor
	Page    int
}

type GetOpenPanelQuery struct {
	GuildID string
	Actor   permission.Actor
}

// GetSettingsUseCase builds the admin settings panel and the public open
// panel.
type GetSettingsUseCase struct {
	settings     setting.SettingProvider
	categoryRepo ticket.CategoryRepository
	policy       *permission.Policy
	logger       logger.Interface
}

func NewGetSettingsUseCase(
	settings setting.SettingProvider,
	categoryRepo ticket.CategoryRepository,
	policy *permission.Policy,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settings:     settings,
		categoryRepo: categoryRepo,
		policy:       policy,
		logger:       logger,
	}
}

// GetPanel works before setup; unset values show their defaults. Pages
// outside 1..2 fall back to page 1.
func (uc *GetSettingsUseCase) GetPanel(ctx context.Context, query GetPanelQuery) (*dto.PanelDTO, error) {
	if err := requireAdmin(uc.policy, query.Actor); err != nil {
		return nil, err
	}

	s, err := uc.settings.GetOrDefaults(ctx, query.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}
	categories, err := uc.categoryRepo.ListByGuild(ctx, query.GuildID)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err, "guild_id", query.GuildID)
		return nil, errors.NewUpstreamError("failed to load categories", err)
	}

	page := query.Page
	if page != PanelPageAutomation {
		page = PanelPageCategories
	}
	return &dto.PanelDTO{
		Page:       page,
		Settings:   dto.ToSettingsDTO(s),
		Categories: dto.ToCategoryDTOs(categories),
	}, nil
}

// GetOpenPanel requires a completed setup.
func (uc *GetSettingsUseCase) GetOpenPanel(ctx context.Context, query GetOpenPanelQuery) (*dto.OpenPanelDTO, error) {
	if err := requireAdmin(uc.policy, query.Actor); err != nil {
		return nil, err
	}
	if _, err := requireSettings(ctx, uc.settings, query.GuildID); err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.ListByGuild(ctx, query.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load categories", err)
	}
	return &dto.OpenPanelDTO{Categories: dto.ToCategoryDTOs(categories)}, nil
}

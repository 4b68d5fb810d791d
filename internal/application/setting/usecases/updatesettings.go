package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/swiftticket/swiftticket/internal/application/setting/dto"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// UpdateSettingsCommand carries one raw value from a select, modal or slash
// command option.
type UpdateSettingsCommand struct {
	GuildID string
	Actor   permission.Actor
	Value   string
}

type ConfigureModerationCommand struct {
	GuildID        string
	Actor          permission.Actor
	WarnThreshold  int
	TimeoutMinutes int
}

// UpdateSettingsResult returns the saved settings together with the refreshed
// panel page when the change came from the panel.
type UpdateSettingsResult struct {
	Settings dto.SettingsDTO `json:"settings"`
	Panel    *dto.PanelDTO   `json:"panel,omitempty"`
}

// UpdateSettingsUseCase applies admin changes to an existing configuration.
type UpdateSettingsUseCase struct {
	settings     setting.SettingProvider
	categoryRepo ticket.CategoryRepository
	policy       *permission.Policy
	logger       logger.Interface
}

func NewUpdateSettingsUseCase(
	settings setting.SettingProvider,
	categoryRepo ticket.CategoryRepository,
	policy *permission.Policy,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settings:     settings,
		categoryRepo: categoryRepo,
		policy:       policy,
		logger:       logger,
	}
}

// SetCategorySlots handles the slot selects of panel page 1.
func (uc *UpdateSettingsUseCase) SetCategorySlots(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(cmd.Value))
	if err != nil || n < setting.MinCategorySlots || n > setting.MaxCategorySlots {
		return nil, errors.NewValidationError(fmt.Sprintf("Choose between %d and %d.", setting.MinCategorySlots, setting.MaxCategorySlots))
	}
	return uc.apply(ctx, cmd.GuildID, "category_slots", 1, func(s *setting.GuildSettings) error {
		return s.SetCategorySlots(n)
	})
}

// SetWarnThreshold handles the warn threshold modal.
func (uc *UpdateSettingsUseCase) SetWarnThreshold(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(cmd.Value))
	if err != nil {
		return nil, errors.NewValidationError("Please provide a number.")
	}
	return uc.apply(ctx, cmd.GuildID, "warn_threshold", 0, func(s *setting.GuildSettings) error {
		return s.SetWarnThreshold(n)
	})
}

// SetWarnTimeout handles the timeout minutes modal.
func (uc *UpdateSettingsUseCase) SetWarnTimeout(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(cmd.Value))
	if err != nil {
		return nil, errors.NewValidationError("Please provide a number.")
	}
	return uc.apply(ctx, cmd.GuildID, "warn_timeout_minutes", 0, func(s *setting.GuildSettings) error {
		return s.SetWarnTimeoutMinutes(n)
	})
}

// ToggleFeature flips one of the smart, ai or priority switches on page 2.
func (uc *UpdateSettingsUseCase) ToggleFeature(ctx context.Context, cmd UpdateSettingsCommand) (*UpdateSettingsResult, error) {
	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}
	feature := setting.Feature(cmd.Value)
	if !feature.IsValid() {
		return nil, errors.NewValidationError("Unknown feature.", cmd.Value)
	}
	return uc.apply(ctx, cmd.GuildID, "toggle_"+cmd.Value, 2, func(s *setting.GuildSettings) error {
		_, err := s.Toggle(feature)
		return err
	})
}

// ConfigureModeration handles /mod config.
func (uc *UpdateSettingsUseCase) ConfigureModeration(ctx context.Context, cmd ConfigureModerationCommand) (*UpdateSettingsResult, error) {
	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}
	return uc.apply(ctx, cmd.GuildID, "moderation", 0, func(s *setting.GuildSettings) error {
		if err := s.SetWarnThreshold(cmd.WarnThreshold); err != nil {
			return err
		}
		return s.SetWarnTimeoutMinutes(cmd.TimeoutMinutes)
	})
}

// apply loads the existing settings, mutates and saves them. A page above
// zero also rebuilds that panel page.
func (uc *UpdateSettingsUseCase) apply(
	ctx context.Context,
	guildID string,
	field string,
	page int,
	mutate func(s *setting.GuildSettings) error,
) (*UpdateSettingsResult, error) {
	uc.logger.Infow("executing update settings use case",
		"guild_id", guildID,
		"field", field)

	s, err := requireSettings(ctx, uc.settings, guildID)
	if err != nil {
		return nil, err
	}
	if err := mutate(s); err != nil {
		if stderrors.Is(err, setting.ErrUnknownFeature) {
			return nil, errors.NewValidationError("Unknown feature.")
		}
		return nil, errors.NewValidationError(err.Error())
	}
	if err := saveSettings(ctx, uc.settings, s); err != nil {
		return nil, err
	}

	result := &UpdateSettingsResult{Settings: dto.ToSettingsDTO(s)}
	if page > 0 {
		categories, err := uc.categoryRepo.ListByGuild(ctx, guildID)
		if err != nil {
			return nil, errors.NewUpstreamError("failed to load categories", err)
		}
		result.Panel = &dto.PanelDTO{
			Page:       page,
			Settings:   result.Settings,
			Categories: dto.ToCategoryDTOs(categories),
		}
	}

	uc.logger.Infow("settings updated successfully",
		"guild_id", guildID,
		"field", field)

	return result, nil
}

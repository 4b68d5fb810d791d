package usecases

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/application/setting/dto"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

type SetupGuildCommand struct {
	GuildID string
	Actor   permission.Actor
	// ParentID is the category containing the channel chosen by the admin;
	// empty when that channel has no parent.
	ParentID    string
	StaffRoleID string
	Timezone    string
}

// SetupGuildUseCase records where ticket channels go and who the staff are.
// Tunables of an existing configuration are kept.
type SetupGuildUseCase struct {
	settings setting.SettingProvider
	policy   *permission.Policy
	logger   logger.Interface
}

func NewSetupGuildUseCase(
	settings setting.SettingProvider,
	policy *permission.Policy,
	logger logger.Interface,
) *SetupGuildUseCase {
	return &SetupGuildUseCase{
		settings: settings,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *SetupGuildUseCase) Execute(ctx context.Context, cmd SetupGuildCommand) (*dto.SettingsDTO, error) {
	uc.logger.Infow("executing setup guild use case",
		"guild_id", cmd.GuildID,
		"actor_id", cmd.Actor.UserID)

	if err := requireAdmin(uc.policy, cmd.Actor); err != nil {
		return nil, err
	}
	if cmd.ParentID == "" {
		return nil, errors.NewValidationError("Channel must be inside a category.")
	}
	if cmd.Timezone != "" {
		if err := biztime.ValidateTimezone(cmd.Timezone); err != nil {
			return nil, errors.NewValidationError("Unknown timezone.", cmd.Timezone)
		}
	}

	s, err := uc.settings.GetOrDefaults(ctx, cmd.GuildID)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}
	timezone := cmd.Timezone
	if timezone == "" {
		timezone = s.Timezone
	}
	if err := s.Configure(cmd.ParentID, cmd.StaffRoleID, timezone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := saveSettings(ctx, uc.settings, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("guild configured successfully",
		"guild_id", cmd.GuildID,
		"parent_id", s.TicketParentID,
		"staff_role_id", s.StaffRoleID)

	out := dto.ToSettingsDTO(s)
	return &out, nil
}

package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/moderation/dto"
	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const msgManageServer = "Manage Server required."

type LogModActionCommand struct {
	GuildID      string
	Actor        permission.Actor
	TargetUserID string
	Action       string
	Reason       string
}

// LogModActionUseCase appends a manual moderation entry. A WARN also runs
// the escalation check.
type LogModActionUseCase struct {
	modRepo  moderation.Repository
	settings setting.SettingProvider
	policy   *permission.Policy
	escalate escalator
	logger   logger.Interface
	now      func() time.Time
}

func NewLogModActionUseCase(
	modRepo moderation.Repository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	moderator MemberModerator,
	logger logger.Interface,
) *LogModActionUseCase {
	return &LogModActionUseCase{
		modRepo:  modRepo,
		settings: settings,
		policy:   policy,
		escalate: escalator{modRepo: modRepo, moderator: moderator, logger: logger},
		logger:   logger,
		now:      biztime.NowUTC,
	}
}

func (uc *LogModActionUseCase) Execute(ctx context.Context, cmd LogModActionCommand) (*dto.ModActionDTO, error) {
	uc.logger.Infow("executing log mod action use case",
		"guild_id", cmd.GuildID,
		"actor_id", cmd.Actor.UserID,
		"target_id", cmd.TargetUserID,
		"action", cmd.Action)

	allowed, err := uc.policy.Authorize(cmd.Actor, permission.Subject{}, permvo.ResourceModeration, permvo.ActionLog)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to check permissions", err)
	}
	if !allowed {
		return nil, errors.NewForbiddenError(msgManageServer)
	}

	s, err := uc.settings.Get(ctx, cmd.GuildID)
	if err != nil {
		if stderrors.Is(err, setting.ErrSettingsNotFound) {
			return nil, errors.NewNotConfiguredError("Run /ticket setup first.")
		}
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}

	action, err := moderation.NewActionType(cmd.Action)
	if err != nil {
		return nil, errors.NewValidationError("Action must be WARN, MUTE or BAN.", cmd.Action)
	}
	entry, err := moderation.NewModAction(cmd.GuildID, cmd.TargetUserID, action, cmd.Reason, cmd.Actor.UserID, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.modRepo.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to log mod action", "error", err, "guild_id", cmd.GuildID)
		return nil, errors.NewUpstreamError("failed to save moderation action", err)
	}

	out := dto.ToModActionDTO(entry)
	if action == moderation.ActionWarn {
		warnings, timedOut, err := uc.escalate.check(ctx, s, cmd.TargetUserID)
		out.Warnings = warnings
		out.TimedOut = timedOut
		if err != nil {
			return &out, err
		}
	}

	uc.logger.Infow("mod action logged successfully",
		"guild_id", cmd.GuildID,
		"mod_action_id", entry.ID(),
		"timed_out", out.TimedOut)

	return &out, nil
}

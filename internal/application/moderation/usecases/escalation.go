package usecases

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// escalator times a member out once their WARN count reaches the guild
// threshold. It re-checks on every warning.
type escalator struct {
	modRepo   moderation.Repository
	moderator MemberModerator
	logger    logger.Interface
}

func (e escalator) check(ctx context.Context, s *setting.GuildSettings, userID string) (int64, bool, error) {
	warnings, err := e.modRepo.Count(ctx, s.GuildID, userID, moderation.ActionWarn)
	if err != nil {
		e.logger.Errorw("failed to count warnings", "error", err, "guild_id", s.GuildID, "user_id", userID)
		return 0, false, errors.NewUpstreamError("failed to count warnings", err)
	}
	if !moderation.ShouldTimeout(warnings, s.WarnThreshold) {
		return warnings, false, nil
	}

	if err := e.moderator.TimeoutMember(ctx, s.GuildID, userID, s.WarnTimeout(), moderation.AutoTimeoutReason); err != nil {
		e.logger.Errorw("failed to time out member",
			"error", err,
			"guild_id", s.GuildID,
			"user_id", userID,
			"warnings", warnings)
		return warnings, false, errors.NewUpstreamError("failed to time out member", err)
	}

	e.logger.Infow("member timed out after warnings",
		"guild_id", s.GuildID,
		"user_id", userID,
		"warnings", warnings,
		"threshold", s.WarnThreshold,
		"minutes", s.WarnTimeoutMinutes)
	return warnings, true, nil
}

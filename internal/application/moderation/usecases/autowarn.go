package usecases

import (
	"context"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/risk"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// AutoWarnUseCase records the WARN raised by flagged keywords in a ticket
// channel. Entries are attributed to the bot user.
type AutoWarnUseCase struct {
	modRepo     moderation.Repository
	settings    setting.SettingProvider
	escalate    escalator
	systemActor string
	logger      logger.Interface
	now         func() time.Time
}

func NewAutoWarnUseCase(
	modRepo moderation.Repository,
	settings setting.SettingProvider,
	moderator MemberModerator,
	systemActor string,
	logger logger.Interface,
) *AutoWarnUseCase {
	return &AutoWarnUseCase{
		modRepo:     modRepo,
		settings:    settings,
		escalate:    escalator{modRepo: modRepo, moderator: moderator, logger: logger},
		systemActor: systemActor,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// WarnForKeywords reports whether the member was timed out.
func (uc *AutoWarnUseCase) WarnForKeywords(ctx context.Context, guildID, userID string, keywords []string) (bool, error) {
	if len(keywords) == 0 {
		return false, nil
	}

	uc.logger.Infow("executing auto warn use case",
		"guild_id", guildID,
		"user_id", userID,
		"keywords", len(keywords))

	s, err := uc.settings.GetOrDefaults(ctx, guildID)
	if err != nil {
		return false, errors.NewUpstreamError("failed to load guild settings", err)
	}

	entry, err := moderation.NewModAction(guildID, userID, moderation.ActionWarn, risk.KeywordReason(keywords), uc.systemActor, uc.now())
	if err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	if err := uc.modRepo.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to record auto warn", "error", err, "guild_id", guildID, "user_id", userID)
		return false, errors.NewUpstreamError("failed to save moderation action", err)
	}

	_, timedOut, err := uc.escalate.check(ctx, s, userID)
	return timedOut, err
}

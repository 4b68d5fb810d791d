package moderation

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/application/moderation/dto"
	"github.com/swiftticket/swiftticket/internal/application/moderation/usecases"
	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// ServiceDDD aggregates the moderation use cases
type ServiceDDD struct {
	logUC  *usecases.LogModActionUseCase
	warnUC *usecases.AutoWarnUseCase
}

// NewServiceDDD creates a new moderation service. systemActor is the bot's
// user ID, recorded as the author of automatic warnings.
func NewServiceDDD(
	modRepo moderation.Repository,
	provider setting.SettingProvider,
	policy *permission.Policy,
	moderator usecases.MemberModerator,
	systemActor string,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logUC:  usecases.NewLogModActionUseCase(modRepo, provider, policy, moderator, logger),
		warnUC: usecases.NewAutoWarnUseCase(modRepo, provider, moderator, systemActor, logger),
	}
}

func (s *ServiceDDD) LogAction(ctx context.Context, cmd usecases.LogModActionCommand) (*dto.ModActionDTO, error) {
	return s.logUC.Execute(ctx, cmd)
}

// WarnForKeywords satisfies the ticket message watcher's KeywordWarner.
func (s *ServiceDDD) WarnForKeywords(ctx context.Context, guildID, userID string, keywords []string) (bool, error) {
	return s.warnUC.WarnForKeywords(ctx, guildID, userID, keywords)
}

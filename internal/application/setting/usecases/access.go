package usecases

import (
	"context"
	stderrors "errors"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
)

const (
	msgAdminOnly     = "Admin only."
	msgNotConfigured = "Run /ticket setup first."
)

func requireAdmin(policy *permission.Policy, actor permission.Actor) error {
	allowed, err := policy.Authorize(actor, permission.Subject{}, permvo.ResourceSettings, permvo.ActionManage)
	if err != nil {
		return errors.NewUpstreamError("failed to check permissions", err)
	}
	if !allowed {
		return errors.NewForbiddenError(msgAdminOnly)
	}
	return nil
}

func requireSettings(ctx context.Context, provider setting.SettingProvider, guildID string) (*setting.GuildSettings, error) {
	s, err := provider.Get(ctx, guildID)
	if err != nil {
		if stderrors.Is(err, setting.ErrSettingsNotFound) {
			return nil, errors.NewNotConfiguredError(msgNotConfigured)
		}
		return nil, errors.NewUpstreamError("failed to load guild settings", err)
	}
	return s, nil
}

func saveSettings(ctx context.Context, provider setting.SettingProvider, s *setting.GuildSettings) error {
	if err := provider.Save(ctx, s); err != nil {
		if errors.IsValidationError(err) {
			return err
		}
		return errors.NewUpstreamError("failed to save settings", err)
	}
	return nil
}

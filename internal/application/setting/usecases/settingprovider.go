package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

var _ setting.SettingProvider = (*SettingProvider)(nil)

// SettingProviderConfig holds the fallbacks taken from process configuration.
type SettingProviderConfig struct {
	Timezone string
}

// SettingProvider applies defaults to stored guild settings. It is the only
// place where "what is stored" becomes "what is assumed".
type SettingProvider struct {
	settingRepo setting.Repository
	timezone    string
	logger      logger.Interface
	now         func() time.Time
}

func NewSettingProvider(
	settingRepo setting.Repository,
	cfg SettingProviderConfig,
	logger logger.Interface,
) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		timezone:    cfg.Timezone,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (p *SettingProvider) Get(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	stored, err := p.settingRepo.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}
	s := setting.WithDefaults(*stored, p.timezone)
	return &s, nil
}

func (p *SettingProvider) GetOrDefaults(ctx context.Context, guildID string) (*setting.GuildSettings, error) {
	s, err := p.Get(ctx, guildID)
	if err == nil {
		return s, nil
	}
	if !stderrors.Is(err, setting.ErrSettingsNotFound) {
		return nil, err
	}
	d := setting.Defaults(guildID, p.timezone)
	return &d, nil
}

func (p *SettingProvider) Save(ctx context.Context, s *setting.GuildSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	now := p.now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	stored := s.ToStored()
	if err := p.settingRepo.Upsert(ctx, &stored); err != nil {
		p.logger.Errorw("failed to save guild settings", "error", err, "guild_id", s.GuildID)
		return fmt.Errorf("failed to save guild settings: %w", err)
	}
	return nil
}

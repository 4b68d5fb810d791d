package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/mappers"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
	"github.com/swiftticket/swiftticket/internal/shared/db"
)

var _ setting.Repository = (*GuildSettingsRepository)(nil)

// upsertColumns excludes created_at so that the first setup time is kept.
var upsertColumns = []string{
	"ticket_parent_id",
	"staff_role_id",
	"timezone",
	"category_slots",
	"warn_threshold",
	"warn_timeout_minutes",
	"smart_replies",
	"ai_suggestions",
	"auto_priority",
	"updated_at",
}

type GuildSettingsRepository struct {
	db *gorm.DB
}

func NewGuildSettingsRepository(db *gorm.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{db: db}
}

func (r *GuildSettingsRepository) Get(ctx context.Context, guildID string) (*setting.Stored, error) {
	var model models.GuildSettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("guild_id = ?", guildID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return mappers.SettingsToDomain(&model), nil
}

func (r *GuildSettingsRepository) Upsert(ctx context.Context, s *setting.Stored) error {
	model := mappers.SettingsToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert guild settings: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/mappers"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
	"github.com/swiftticket/swiftticket/internal/shared/db"
)

var _ moderation.Repository = (*ModActionRepository)(nil)

// ModActionRepository is append-only: there is no update or delete.
type ModActionRepository struct {
	db *gorm.DB
}

func NewModActionRepository(db *gorm.DB) *ModActionRepository {
	return &ModActionRepository{db: db}
}

func (r *ModActionRepository) Create(ctx context.Context, action *moderation.ModAction) error {
	model := mappers.ModActionToModel(action)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create mod action: %w", err)
	}
	action.SetID(model.ID)
	return nil
}

func (r *ModActionRepository) Count(ctx context.Context, guildID, userID string, action moderation.ActionType) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ModActionModel{}).
		Where("guild_id = ? AND user_id = ? AND action = ?", guildID, userID, action.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count mod actions: %w", err)
	}
	return count, nil
}

func (r *ModActionRepository) GetSummary(ctx context.Context, guildID, userID string) (*moderation.Summary, error) {
	var rows []struct {
		Action string
		Total  int64
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ModActionModel{}).
		Select("action, COUNT(*) AS total").
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Group("action").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to summarise mod actions: %w", err)
	}

	summary := &moderation.Summary{}
	for _, row := range rows {
		switch moderation.ActionType(row.Action) {
		case moderation.ActionWarn:
			summary.Warnings = row.Total
		case moderation.ActionMute:
			summary.Mutes = row.Total
		case moderation.ActionBan:
			summary.Bans = row.Total
		}
	}
	return summary, nil
}

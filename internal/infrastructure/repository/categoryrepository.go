package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/mappers"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
	"github.com/swiftticket/swiftticket/internal/shared/db"
)

var _ ticket.CategoryRepository = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *ticket.Category) error {
	model := mappers.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, guildID string, id uint) (*ticket.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND guild_id = ?", id, guildID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return mappers.CategoryToDomain(&model)
}

// ListByGuild returns the guild's categories ordered by id.
func (r *CategoryRepository) ListByGuild(ctx context.Context, guildID string) ([]*ticket.Category, error) {
	var list []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("guild_id = ?", guildID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]*ticket.Category, 0, len(list))
	for i := range list {
		c, err := mappers.CategoryToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CategoryRepository) CountByGuild(ctx context.Context, guildID string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.CategoryModel{}).Where("guild_id = ?", guildID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

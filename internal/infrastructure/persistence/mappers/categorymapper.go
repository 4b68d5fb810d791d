package mappers

import (
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
)

func CategoryToModel(c *ticket.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		GuildID:     c.GuildID(),
		Name:        c.Name(),
		Description: nullable(c.Description()),
		CreatedAt:   c.CreatedAt(),
	}
}

func CategoryToDomain(model *models.CategoryModel) (*ticket.Category, error) {
	return ticket.ReconstructCategory(
		model.ID,
		model.GuildID,
		model.Name,
		valueOr(model.Description, ""),
		model.CreatedAt.UTC(),
	)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/mappers"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
	"github.com/swiftticket/swiftticket/internal/shared/db"
)

var _ ticket.TicketRepository = (*TicketRepository)(nil)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *TicketRepository) GetByMessageID(ctx context.Context, messageID string) (*ticket.Ticket, error) {
	if messageID == "" {
		return nil, ticket.ErrTicketNotFound
	}
	return r.first(ctx, "message_id = ?", messageID)
}

func (r *TicketRepository) GetByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	if channelID == "" {
		return nil, ticket.ErrTicketNotFound
	}
	return r.first(ctx, "channel_id = ?", channelID)
}

func (r *TicketRepository) first(ctx context.Context, query string, arg any) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).Order("id DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// UpdateStatus is a compare-and-swap on the status column.
func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket, expected vo.TicketStatus) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND status = ?", model.ID, expected.String()).
		Updates(map[string]any{
			"status":       model.Status,
			"claimed_by":   model.ClaimedBy,
			"claimed_at":   model.ClaimedAt,
			"closed_by":    model.ClosedBy,
			"closed_at":    model.ClosedAt,
			"reopened_by":  model.ReopenedBy,
			"reopened_at":  model.ReopenedAt,
			"reopen_count": model.ReopenCount,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrStatusConflict
	}
	return nil
}

func (r *TicketRepository) UpdateActivity(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"message_id":              model.MessageID,
			"priority":                model.Priority,
			"priority_reason":         model.PriorityReason,
			"last_user_message_at":    model.LastUserMessageAt,
			"last_staff_message_at":   model.LastStaffMessageAt,
			"first_staff_response_at": model.FirstStaffResponseAt,
			"first_response_ms":       model.FirstResponseMS,
			"avg_response_ms":         model.AvgResponseMS,
			"response_count":          model.ResponseCount,
			"updated_at":              model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) Count(ctx context.Context, filter ticket.CountFilter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.GuildID != "" {
		tx = tx.Where("guild_id = ?", filter.GuildID)
	}
	if filter.CreatorID != "" {
		tx = tx.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Since != nil {
		tx = tx.Where("created_at >= ?", filter.Since.UTC())
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) ListByCreatorSince(ctx context.Context, guildID, creatorID string, since time.Time) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("guild_id = ? AND creator_id = ? AND created_at >= ?", guildID, creatorID, since.UTC()).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *TicketRepository) GetCreatorHistory(ctx context.Context, guildID, creatorID string) (*ticket.CreatorHistory, error) {
	total, err := r.Count(ctx, ticket.CountFilter{GuildID: guildID, CreatorID: creatorID})
	if err != nil {
		return nil, err
	}

	history := &ticket.CreatorHistory{Total: total}
	if total == 0 {
		return history, nil
	}

	var latest models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("guild_id = ? AND creator_id = ?", guildID, creatorID).
		Order("created_at DESC, id DESC").
		First(&latest).Error; err != nil {
		return nil, fmt.Errorf("failed to load latest ticket: %w", err)
	}

	last := latest.CreatedAt.UTC()
	if latest.ClosedAt != nil {
		last = latest.ClosedAt.UTC()
	}
	history.LastSupportAt = &last
	return history, nil
}

func (r *TicketRepository) GetUserStats(ctx context.Context, guildID, userID string) (*ticket.UserStats, error) {
	var stats ticket.UserStats
	counts := []struct {
		column string
		dest   *int64
	}{
		{column: "creator_id", dest: &stats.Created},
		{column: "claimed_by", dest: &stats.Claimed},
		{column: "closed_by", dest: &stats.Closed},
	}

	tx := db.GetTxFromContext(ctx, r.db)
	for _, c := range counts {
		if err := tx.
			Model(&models.TicketModel{}).
			Where("guild_id = ? AND "+c.column+" = ?", guildID, userID).
			Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count tickets by %s: %w", c.column, err)
		}
	}
	return &stats, nil
}

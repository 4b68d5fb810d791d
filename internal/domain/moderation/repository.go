package moderation

import "context"

type Repository interface {
	Create(ctx context.Context, action *ModAction) error
	Count(ctx context.Context, guildID, userID string, action ActionType) (int64, error)
	GetSummary(ctx context.Context, guildID, userID string) (*Summary, error)
}

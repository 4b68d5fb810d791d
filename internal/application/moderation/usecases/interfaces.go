package usecases

import (
	"context"
	"time"

	"github.com/swiftticket/swiftticket/internal/application/moderation/dto"
)

type LogModActionExecutor interface {
	Execute(ctx context.Context, cmd LogModActionCommand) (*dto.ModActionDTO, error)
}

// MemberModerator applies restrictions to guild members on the chat platform.
type MemberModerator interface {
	TimeoutMember(ctx context.Context, guildID, userID string, d time.Duration, reason string) error
}

package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/swiftticket/swiftticket/internal/shared/biztime"
)

// MemberModerator applies timeouts to guild members.
type MemberModerator struct {
	client RESTClient
}

func NewMemberModerator(client RESTClient) *MemberModerator {
	return &MemberModerator{client: client}
}

func (m *MemberModerator) TimeoutMember(ctx context.Context, guildID, userID string, d time.Duration, reason string) error {
	until := biztime.NowUTC().Add(d)
	if err := m.client.GuildMemberTimeout(guildID, userID, &until,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason)); err != nil {
		return fmt.Errorf("failed to time out member: %w", err)
	}
	return nil
}

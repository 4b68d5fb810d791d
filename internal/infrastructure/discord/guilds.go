package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// GuildDirectory answers guild lookups from the gateway state cache, falling
// back to REST.
type GuildDirectory struct {
	session *discordgo.Session
}

func NewGuildDirectory(s *discordgo.Session) *GuildDirectory {
	return &GuildDirectory{session: s}
}

func (d *GuildDirectory) OwnerID(ctx context.Context, guildID string) (string, error) {
	if d.session.State != nil {
		if g, err := d.session.State.Guild(guildID); err == nil && g.OwnerID != "" {
			return g.OwnerID, nil
		}
	}
	g, err := d.session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to load guild %s: %w", guildID, err)
	}
	return g.OwnerID, nil
}

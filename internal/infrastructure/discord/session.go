package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/swiftticket/swiftticket/internal/shared/config"
)

// Intents requested by the bot. Message content is privileged and must be
// enabled for the application.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

// NewSession builds an unopened gateway session for the bot token.
func NewSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord token is required")
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = Intents
	s.StateEnabled = true
	return s, nil
}

package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	ticketusecases "github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
	"github.com/swiftticket/swiftticket/internal/domain/permission"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// HandleMessage feeds a guild message to the ticket message watcher.
// Admin capability is not resolved for chat messages; only staff and owner
// matter there.
func (r *Router) HandleMessage(ctx context.Context, m *discordgo.Message, log logger.Interface) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	author := permission.Actor{UserID: m.Author.ID}
	if m.Member != nil {
		author.RoleIDs = m.Member.Roles
	}
	if ownerID, err := r.owners.OwnerID(ctx, m.GuildID); err != nil {
		log.Warnw("failed to resolve guild owner", "error", err)
	} else {
		author.IsOwner = ownerID == m.Author.ID
	}

	result, err := r.tickets.HandleMessage(ctx, ticketusecases.HandleChannelMessageCommand{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Author:    author,
		Content:   m.Content,
		SentAt:    m.Timestamp,
	})
	if err != nil {
		log.Errorw("failed to process ticket message", "channel_id", m.ChannelID, "error", err)
		return
	}
	if result.Ignored {
		return
	}
	log.Debugw("ticket message processed",
		"ticket_id", result.TicketID,
		"author", result.Author,
		"flagged", result.Flagged,
		"timed_out", result.TimedOut,
		"priority_raised", result.PriorityRaised,
		"smart_sent", result.SmartSent)
}

// WelcomeChannel picks where the welcome message goes: the system channel,
// else the first text channel the bot may post in.
func WelcomeChannel(g *discordgo.Guild, canSend func(channelID string) bool) string {
	if g.SystemChannelID != "" {
		return g.SystemChannelID
	}
	for _, ch := range g.Channels {
		if ch.Type == discordgo.ChannelTypeGuildText && canSend(ch.ID) {
			return ch.ID
		}
	}
	return ""
}

// HandleGuildJoin posts the welcome message into a newly joined guild.
func (r *Router) HandleGuildJoin(ctx context.Context, g *discordgo.Guild, canSend func(channelID string) bool, log logger.Interface) {
	channelID := WelcomeChannel(g, canSend)
	if channelID == "" {
		log.Warnw("no channel to post the welcome message")
		return
	}
	if _, err := r.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Components: dg.RenderWelcome(g.Name),
		Flags:      flagsV2,
	}, discordgo.WithContext(ctx)); err != nil {
		log.Warnw("failed to send welcome message", "channel_id", channelID, "error", err)
	}
}

package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ChannelNotifier posts automatic notices into ticket channels.
type ChannelNotifier struct {
	client RESTClient
}

func NewChannelNotifier(client RESTClient) *ChannelNotifier {
	return &ChannelNotifier{client: client}
}

func (n *ChannelNotifier) PostSafetyAlert(ctx context.Context, channelID, staffRoleID string, keywords []string) error {
	components := []discordgo.MessageComponent{}
	mentions := &discordgo.MessageAllowedMentions{}
	if staffRoleID != "" {
		components = append(components, text("<@&"+staffRoleID+">"))
		mentions.Roles = []string{staffRoleID}
	}
	components = append(components, Notice(NoticeError, "Safety Alert",
		"Message flagged for keywords: "+strings.Join(keywords, ", "))...)

	return n.send(ctx, channelID, components, mentions)
}

func (n *ChannelNotifier) PostSmartReply(ctx context.Context, channelID, reply string) error {
	return n.send(ctx, channelID,
		Notice(NoticeInfo, "Smart Reply", reply),
		&discordgo.MessageAllowedMentions{})
}

func (n *ChannelNotifier) send(ctx context.Context, channelID string, components []discordgo.MessageComponent, mentions *discordgo.MessageAllowedMentions) error {
	_, err := n.client.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Components:      components,
		Flags:           discordgo.MessageFlagsIsComponentsV2,
		AllowedMentions: mentions,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post notice: %w", err)
	}
	return nil
}

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
)

// TicketPublisher posts and refreshes the Components V2 ticket message.
type TicketPublisher struct {
	client RESTClient
}

func NewTicketPublisher(client RESTClient) *TicketPublisher {
	return &TicketPublisher{client: client}
}

func (p *TicketPublisher) PublishTicket(ctx context.Context, channelID string, view *dto.TicketView) (string, error) {
	msg, err := p.client.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Components: RenderTicket(view),
		Flags:      discordgo.MessageFlagsIsComponentsV2,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{view.Ticket.CreatorID},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to post ticket message: %w", err)
	}
	return msg.ID, nil
}

func (p *TicketPublisher) RefreshTicket(ctx context.Context, channelID, messageID string, view *dto.TicketView) error {
	components := RenderTicket(view)
	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.Components = &components
	edit.Flags = discordgo.MessageFlagsIsComponentsV2

	if _, err := p.client.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to refresh ticket message: %w", err)
	}
	return nil
}

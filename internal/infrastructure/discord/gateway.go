package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

const (
	// Maximum page size of the channel messages endpoint.
	historyPageSize = 100

	memberAllow = discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionReadMessageHistory |
		discordgo.PermissionAttachFiles
)

// ChannelGateway manages ticket channels through the REST API.
type ChannelGateway struct {
	client RESTClient
	logger logger.Interface
}

func NewChannelGateway(client RESTClient, log logger.Interface) *ChannelGateway {
	return &ChannelGateway{client: client, logger: log}
}

// CreateTicketChannel creates a text channel only the creator and the staff
// role can see. The @everyone role shares the guild's id.
func (g *ChannelGateway) CreateTicketChannel(ctx context.Context, req dto.TicketChannelRequest) (string, error) {
	data := discordgo.GuildChannelCreateData{
		Name:     fmt.Sprintf("ticket-%d", req.CreatedAt.Unix()),
		Type:     discordgo.ChannelTypeGuildText,
		Topic:    "SwiftTicket for " + req.CreatorName,
		ParentID: req.ParentID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{ID: req.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
			{ID: req.StaffRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: memberAllow},
			{ID: req.CreatorID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberAllow},
		},
	}

	ch, err := g.client.GuildChannelCreateComplex(req.GuildID, data, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create ticket channel: %w", err)
	}

	g.logger.Debugw("ticket channel created", "guild_id", req.GuildID, "channel_id", ch.ID)
	return ch.ID, nil
}

func (g *ChannelGateway) RenameChannel(ctx context.Context, channelID, name string) error {
	if _, err := g.client.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to rename channel: %w", err)
	}
	return nil
}

func (g *ChannelGateway) SetCreatorAccess(ctx context.Context, channelID, creatorID string, canSend bool) error {
	allow := int64(memberAllow)
	var deny int64
	if !canSend {
		allow &^= discordgo.PermissionSendMessages
		deny = discordgo.PermissionSendMessages
	}

	if err := g.client.ChannelPermissionSet(channelID, creatorID, discordgo.PermissionOverwriteTypeMember, allow, deny, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to update creator permissions: %w", err)
	}
	return nil
}

// FetchHistory pages backwards through the channel and returns the messages
// oldest first.
func (g *ChannelGateway) FetchHistory(ctx context.Context, channelID string) ([]dto.ChannelMessage, error) {
	var (
		collected []*discordgo.Message
		before    string
	)
	for {
		page, err := g.client.ChannelMessages(channelID, historyPageSize, before, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch channel messages: %w", err)
		}
		collected = append(collected, page...)
		if len(page) < historyPageSize {
			break
		}
		before = page[len(page)-1].ID
	}

	messages := make([]dto.ChannelMessage, 0, len(collected))
	for i := len(collected) - 1; i >= 0; i-- {
		m := collected[i]
		msg := dto.ChannelMessage{
			ID:      m.ID,
			Content: m.Content,
			SentAt:  m.Timestamp,
		}
		if m.Author != nil {
			msg.AuthorID = m.Author.ID
			msg.AuthorName = m.Author.DisplayName()
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (g *ChannelGateway) SendFile(ctx context.Context, channelID, content string, file dto.File) error {
	_, err := g.client.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Files: []*discordgo.File{
			{Name: file.Name, ContentType: file.ContentType, Reader: file.Reader},
		},
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", file.Name, err)
	}
	return nil
}

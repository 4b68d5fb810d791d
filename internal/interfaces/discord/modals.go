package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	settingusecases "github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	ticketusecases "github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
)

// modalValue finds a text input by id. Submitted components arrive as
// pointers; values are accepted too.
func modalValue(i *discordgo.Interaction, fieldID string) string {
	for _, c := range i.ModalSubmitData().Components {
		var row []discordgo.MessageComponent
		switch v := c.(type) {
		case *discordgo.ActionsRow:
			row = v.Components
		case discordgo.ActionsRow:
			row = v.Components
		}
		for _, inner := range row {
			switch in := inner.(type) {
			case *discordgo.TextInput:
				if in.CustomID == fieldID {
					return strings.TrimSpace(in.Value)
				}
			case discordgo.TextInput:
				if in.CustomID == fieldID {
					return strings.TrimSpace(in.Value)
				}
			}
		}
	}
	return ""
}

// refreshPanel re-renders the settings panel message a modal was opened from.
func (r *Router) refreshPanel(ctx context.Context, req *request, messageID string, components []discordgo.MessageComponent) {
	if messageID == "" {
		return
	}
	edit := discordgo.NewMessageEdit(req.interaction.ChannelID, messageID)
	edit.Components = &components
	edit.Flags = flagsV2
	if _, err := r.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		req.log.Warnw("failed to refresh settings panel", "message_id", messageID, "error", err)
	}
}

func (r *Router) submitCategory(ctx context.Context, req *request, cmd Command) error {
	result, err := r.settings.CreateCategory(ctx, settingusecases.CreateCategoryCommand{
		GuildID:     req.guildID,
		Actor:       req.actor,
		Name:        modalValue(req.interaction, dg.FieldCategoryName),
		Description: modalValue(req.interaction, dg.FieldCategoryDescription),
	})
	if err != nil {
		return err
	}

	r.refreshPanel(ctx, req, cmd.MessageID, dg.RenderSettingsPanel(&result.Panel))
	return req.reply.Notice(dg.NoticeSuccess, "Category added",
		fmt.Sprintf("**%s** is now available (%d/%d).",
			result.Category.Name, len(result.Panel.Categories), result.Panel.Settings.CategorySlots))
}

func (r *Router) submitSettings(ctx context.Context, req *request, cmd Command) error {
	update, field, title := r.settings.SetWarnThreshold, dg.FieldWarnThreshold, "Warn threshold updated"
	if cmd.Kind == KindTimeoutModal {
		update, field, title = r.settings.SetWarnTimeout, dg.FieldWarnTimeoutMinutes, "Timeout updated"
	}

	result, err := update(ctx, settingusecases.UpdateSettingsCommand{
		GuildID: req.guildID,
		Actor:   req.actor,
		Value:   modalValue(req.interaction, field),
	})
	if err != nil {
		return err
	}

	if result.Panel != nil {
		r.refreshPanel(ctx, req, cmd.MessageID, dg.RenderSettingsPanel(result.Panel))
	}
	return req.reply.Notice(dg.NoticeSuccess, title,
		fmt.Sprintf("Warn threshold: %d -> %dm timeout.", result.Settings.WarnThreshold, result.Settings.WarnTimeoutMinutes))
}

func (r *Router) submitOpen(ctx context.Context, req *request, cmd Command) error {
	id, err := strconv.ParseUint(cmd.Target, 10, 64)
	if err != nil {
		return errors.NewNotFoundError("Invalid category")
	}
	categoryID := uint(id)
	return r.createTicket(ctx, req, modalValue(req.interaction, dg.FieldTicketReason), &categoryID)
}

func (r *Router) submitLink(ctx context.Context, req *request, cmd Command) error {
	result, err := r.tickets.Link(ctx, ticketusecases.LinkTicketsCommand{
		GuildID:        req.guildID,
		MessageID:      cmd.MessageID,
		SourceTicketID: cmd.Target,
		LinkedTicketID: modalValue(req.interaction, dg.FieldLinkedTicketID),
		Actor:          req.actor,
	})
	if err != nil {
		return err
	}
	return req.reply.Notice(dg.NoticeSuccess, "Tickets linked",
		fmt.Sprintf("Ticket #%s is now linked with #%s.", dg.PadID(result.TicketID), dg.PadID(result.LinkedTicketID)))
}

package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	settingusecases "github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	ticketusecases "github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
)

func selectedValue(i *discordgo.Interaction) string {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (r *Router) handleCategoryAdd(ctx context.Context, req *request, _ Command) error {
	if err := r.settings.PrepareCategory(ctx, settingusecases.PrepareCategoryCommand{
		GuildID: req.guildID,
		Actor:   req.actor,
	}); err != nil {
		return err
	}
	return req.reply.Modal(dg.CategoryModal(req.interaction.Message.ID))
}

func (r *Router) handlePanelPage(ctx context.Context, req *request, cmd Command) error {
	page, err := strconv.Atoi(cmd.Target)
	if err != nil || page < 1 || page > 2 {
		page = 1
	}
	panel, err := r.settings.GetPanel(ctx, settingusecases.GetPanelQuery{
		GuildID: req.guildID,
		Actor:   req.actor,
		Page:    page,
	})
	if err != nil {
		return err
	}
	return req.reply.Update(dg.RenderSettingsPanel(panel))
}

func (r *Router) handleSlots(ctx context.Context, req *request, _ Command) error {
	return r.updatePanel(ctx, req, r.settings.SetCategorySlots, selectedValue(req.interaction))
}

func (r *Router) handleToggle(ctx context.Context, req *request, cmd Command) error {
	return r.updatePanel(ctx, req, r.settings.ToggleFeature, cmd.Target)
}

type settingsUpdate func(ctx context.Context, cmd settingusecases.UpdateSettingsCommand) (*settingusecases.UpdateSettingsResult, error)

func (r *Router) updatePanel(ctx context.Context, req *request, update settingsUpdate, value string) error {
	result, err := update(ctx, settingusecases.UpdateSettingsCommand{
		GuildID: req.guildID,
		Actor:   req.actor,
		Value:   value,
	})
	if err != nil {
		return err
	}
	if result.Panel == nil {
		return req.reply.Notice(dg.NoticeSuccess, "Settings saved", "Your changes were saved.")
	}
	return req.reply.Update(dg.RenderSettingsPanel(result.Panel))
}

// handleSettingsModal opens the warn threshold or timeout modal prefilled
// with the current value.
func (r *Router) handleSettingsModal(ctx context.Context, req *request, cmd Command) error {
	panel, err := r.settings.GetPanel(ctx, settingusecases.GetPanelQuery{
		GuildID: req.guildID,
		Actor:   req.actor,
		Page:    2,
	})
	if err != nil {
		return err
	}

	messageID := req.interaction.Message.ID
	if cmd.Kind == KindSettingsWarn {
		return req.reply.Modal(dg.WarnThresholdModal(messageID, panel.Settings.WarnThreshold))
	}
	return req.reply.Modal(dg.WarnTimeoutModal(messageID, panel.Settings.WarnTimeoutMinutes))
}

func (r *Router) handleOpenSelect(ctx context.Context, req *request, _ Command) error {
	result, err := r.tickets.PrepareOpen(ctx, ticketusecases.PrepareOpenCommand{
		GuildID:    req.guildID,
		CategoryID: selectedValue(req.interaction),
	})
	if err != nil {
		return err
	}
	return req.reply.Modal(dg.OpenTicketModal(result.CategoryID, result.Name))
}

type transition struct {
	run  func(ctx context.Context, cmd ticketusecases.TransitionTicketCommand) (*ticketusecases.TransitionTicketResult, error)
	verb string
}

func (r *Router) transitions() map[Kind]transition {
	return map[Kind]transition{
		KindClaim:  {run: r.tickets.Claim, verb: "claimed"},
		KindClose:  {run: r.tickets.Close, verb: "closed"},
		KindReopen: {run: r.tickets.Reopen, verb: "reopened"},
	}
}

func (r *Router) handleTransition(ctx context.Context, req *request, cmd Command) error {
	t, ok := r.transitions()[cmd.Kind]
	if !ok {
		return nil
	}
	if err := req.reply.Defer(); err != nil {
		return errors.NewUpstreamError("failed to acknowledge interaction", err)
	}

	result, err := t.run(ctx, ticketusecases.TransitionTicketCommand{
		GuildID:   req.guildID,
		MessageID: req.interaction.Message.ID,
		Actor:     req.actor,
	})
	if err != nil {
		return err
	}
	return req.reply.Notice(dg.NoticeSuccess, "Ticket "+t.verb,
		fmt.Sprintf("Ticket #%s %s by <@%s>.", dg.PadID(result.TicketID), t.verb, req.actor.UserID))
}

func (r *Router) handleTranscript(ctx context.Context, req *request, _ Command) error {
	if err := req.reply.Defer(); err != nil {
		return errors.NewUpstreamError("failed to acknowledge interaction", err)
	}

	result, err := r.tickets.Transcript(ctx, ticketusecases.GenerateTranscriptCommand{
		GuildID:   req.guildID,
		MessageID: req.interaction.Message.ID,
		Actor:     req.actor,
	})
	if err != nil {
		return err
	}
	return req.reply.Notice(dg.NoticeSuccess, "Transcript ready",
		fmt.Sprintf("Posted %s with %d messages.", result.FileName, result.Messages))
}

func (r *Router) handleLinkButton(ctx context.Context, req *request, _ Command) error {
	result, err := r.tickets.PrepareLink(ctx, ticketusecases.PrepareLinkCommand{
		GuildID:   req.guildID,
		MessageID: req.interaction.Message.ID,
		Actor:     req.actor,
	})
	if err != nil {
		return err
	}
	return req.reply.Modal(dg.LinkModal(req.interaction.Message.ID, result.TicketID))
}

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	modusecases "github.com/swiftticket/swiftticket/internal/application/moderation/usecases"
	settingusecases "github.com/swiftticket/swiftticket/internal/application/setting/usecases"
	ticketusecases "github.com/swiftticket/swiftticket/internal/application/ticket/usecases"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
	"github.com/swiftticket/swiftticket/internal/shared/errors"
)

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

// subcommand returns the chosen subcommand and its options keyed by name.
func subcommand(data discordgo.ApplicationCommandInteractionData) (string, options) {
	if len(data.Options) == 0 {
		return "", options{}
	}
	sub := data.Options[0]
	if sub.Type != discordgo.ApplicationCommandOptionSubCommand {
		return "", optionMap(data.Options)
	}
	return sub.Name, optionMap(sub.Options)
}

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o options) string(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// id returns the snowflake of a user, role or channel option.
func (o options) id(name string) string {
	if opt, ok := o[name]; ok {
		if s, ok := opt.Value.(string); ok {
			return s
		}
	}
	return ""
}

func (r *Router) handleTicketCommand(ctx context.Context, req *request, data discordgo.ApplicationCommandInteractionData) error {
	sub, opts := subcommand(data)
	switch sub {
	case dg.SubCreate:
		return r.slashCreate(ctx, req, opts)
	case dg.SubSetup:
		return r.slashSetup(ctx, req, data, opts)
	case dg.SubPanel:
		return r.slashPanel(ctx, req)
	case dg.SubPanelSet:
		return r.slashPanelSet(ctx, req, opts)
	}
	req.log.Debugw("ignoring unknown ticket subcommand", "subcommand", sub)
	return nil
}

func (r *Router) slashCreate(ctx context.Context, req *request, opts options) error {
	return r.createTicket(ctx, req, opts.string(dg.OptionReason), nil)
}

// createTicket is shared by /ticket create and the open-panel modal.
func (r *Router) createTicket(ctx context.Context, req *request, reason string, categoryID *uint) error {
	if err := req.reply.Defer(); err != nil {
		return errors.NewUpstreamError("failed to acknowledge interaction", err)
	}

	user := req.interaction.Member.User
	result, err := r.tickets.Create(ctx, ticketusecases.CreateTicketCommand{
		GuildID:     req.guildID,
		Actor:       req.actor,
		CreatorName: user.Username,
		Reason:      reason,
		CategoryID:  categoryID,
	})
	if result == nil {
		return err
	}
	if err != nil {
		// the channel exists but the ticket message could not be posted
		req.log.Errorw("ticket created with errors", "ticket_id", result.TicketID, "error", err)
	}
	return req.reply.Notice(dg.NoticeSuccess, "Ticket created",
		fmt.Sprintf("Ticket #%d created in <#%s>.", result.TicketID, result.ChannelID))
}

func (r *Router) slashSetup(ctx context.Context, req *request, data discordgo.ApplicationCommandInteractionData, opts options) error {
	channelID := opts.id(dg.OptionParent)
	parentID := ""
	if data.Resolved != nil {
		if ch, ok := data.Resolved.Channels[channelID]; ok {
			parentID = ch.ParentID
		}
	}

	s, err := r.settings.Setup(ctx, settingusecases.SetupGuildCommand{
		GuildID:     req.guildID,
		Actor:       req.actor,
		ParentID:    parentID,
		StaffRoleID: opts.id(dg.OptionStaffRole),
		Timezone:    opts.string(dg.OptionTimezone),
	})
	if err != nil {
		return err
	}
	return req.reply.Notice(dg.NoticeSuccess, "Setup complete",
		fmt.Sprintf("Tickets will be created under <#%s> for staff role <@&%s>. Timezone: %s.",
			s.TicketParentID, s.StaffRoleID, s.Timezone))
}

func (r *Router) slashPanel(ctx context.Context, req *request) error {
	panel, err := r.settings.GetPanel(ctx, settingusecases.GetPanelQuery{
		GuildID: req.guildID,
		Actor:   req.actor,
		Page:    1,
	})
	if err != nil {
		return err
	}
	return req.reply.Public(dg.RenderSettingsPanel(panel))
}

func (r *Router) slashPanelSet(ctx context.Context, req *request, opts options) error {
	panel, err := r.settings.GetOpenPanel(ctx, settingusecases.GetOpenPanelQuery{
		GuildID: req.guildID,
		Actor:   req.actor,
	})
	if err != nil {
		return err
	}

	channelID := opts.id(dg.OptionChannel)
	if channelID == "" {
		channelID = req.interaction.ChannelID
	}
	if _, err := r.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Components: dg.RenderOpenPanel(panel),
		Flags:      flagsV2,
	}, discordgo.WithContext(ctx)); err != nil {
		return errors.NewUpstreamError("failed to post the ticket panel", err)
	}
	return req.reply.Notice(dg.NoticeSuccess, "Panel posted", fmt.Sprintf("The ticket panel is live in <#%s>.", channelID))
}

func (r *Router) handleInfo(ctx context.Context, req *request, data discordgo.ApplicationCommandInteractionData) error {
	opts := optionMap(data.Options)
	userID := opts.id(dg.OptionUser)
	if userID == "" {
		userID = req.actor.UserID
	}

	stats, err := r.tickets.UserStats(ctx, ticketusecases.GetUserStatsQuery{
		GuildID: req.guildID,
		UserID:  userID,
		Actor:   req.actor,
	})
	if err != nil {
		return err
	}
	return req.reply.Ephemeral(dg.RenderUserStats(stats))
}

func (r *Router) handleModCommand(ctx context.Context, req *request, data discordgo.ApplicationCommandInteractionData) error {
	sub, opts := subcommand(data)
	switch sub {
	case dg.SubLog:
		action, err := r.moderation.LogAction(ctx, modusecases.LogModActionCommand{
			GuildID:      req.guildID,
			Actor:        req.actor,
			TargetUserID: opts.id(dg.OptionUser),
			Action:       opts.string(dg.OptionAction),
			Reason:       opts.string(dg.OptionReason),
		})
		if err != nil {
			return err
		}
		body := fmt.Sprintf("%s recorded for <@%s>.", action.Action, action.UserID)
		if action.TimedOut {
			body += fmt.Sprintf(" Warn threshold reached with %d warnings; member timed out.", action.Warnings)
		}
		return req.reply.Notice(dg.NoticeSuccess, "Moderation logged", body)

	case dg.SubConfig:
		result, err := r.settings.ConfigureModeration(ctx, settingusecases.ConfigureModerationCommand{
			GuildID:        req.guildID,
			Actor:          req.actor,
			WarnThreshold:  int(intOption(opts, dg.OptionWarnThreshold)),
			TimeoutMinutes: int(intOption(opts, dg.OptionTimeoutMinutes)),
		})
		if err != nil {
			return err
		}
		return req.reply.Notice(dg.NoticeSuccess, "Moderation updated",
			fmt.Sprintf("Members are timed out for %dm after %d warnings.",
				result.Settings.WarnTimeoutMinutes, result.Settings.WarnThreshold))
	}
	req.log.Debugw("ignoring unknown mod subcommand", "subcommand", sub)
	return nil
}

func intOption(opts options, name string) int64 {
	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return 0
}

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
)

// Slash command and option names.
const (
	CommandTicket = "ticket"
	CommandInfo   = "info"
	CommandMod    = "mod"

	SubCreate   = "create"
	SubSetup    = "setup"
	SubPanel    = "panel"
	SubPanelSet = "panelset"
	SubLog      = "log"
	SubConfig   = "config"

	OptionReason         = "reason"
	OptionParent         = "parent"
	OptionStaffRole      = "staff_role"
	OptionTimezone       = "timezone"
	OptionChannel        = "channel"
	OptionUser           = "user"
	OptionAction         = "action"
	OptionWarnThreshold  = "warn_threshold"
	OptionTimeoutMinutes = "timeout_minutes"
)

// CommandRegistrar is the subset of *discordgo.Session used to publish
// slash commands.
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

func floatPtr(v float64) *float64 { return &v }

// SlashCommands returns the full command set.
func SlashCommands() []*discordgo.ApplicationCommand {
	actionChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 3)
	for _, a := range []moderation.ActionType{moderation.ActionWarn, moderation.ActionMute, moderation.ActionBan} {
		actionChoices = append(actionChoices, &discordgo.ApplicationCommandOptionChoice{Name: string(a), Value: string(a)})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandTicket,
			Description: "Ticket commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubCreate,
					Description: "Open a new ticket",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: OptionReason, Description: "Describe your issue", Required: true, MaxLength: 500},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubSetup,
					Description: "Configure the ticket category and staff role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         OptionParent,
							Description:  "A text channel inside the category tickets are created under",
							Required:     true,
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
						},
						{Type: discordgo.ApplicationCommandOptionRole, Name: OptionStaffRole, Description: "Role that handles tickets", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: OptionTimezone, Description: "IANA timezone, e.g. Europe/Berlin"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubPanel,
					Description: "Post the settings panel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubPanelSet,
					Description: "Post the open-a-ticket panel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         OptionChannel,
							Description:  "Channel to post in (defaults to this one)",
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
						},
					},
				},
			},
		},
		{
			Name:        CommandInfo,
			Description: "Show the ticket summary of a member",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: OptionUser, Description: "Member to look up (defaults to you)"},
			},
		},
		{
			Name:        CommandMod,
			Description: "Moderation commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubLog,
					Description: "Record a moderation action",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionUser, Name: OptionUser, Description: "Member", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: OptionAction, Description: "Action", Required: true, Choices: actionChoices},
						{Type: discordgo.ApplicationCommandOptionString, Name: OptionReason, Description: "Reason", MaxLength: 500},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubConfig,
					Description: "Configure automatic escalation",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: OptionWarnThreshold, Description: "Warnings before timeout", Required: true, MinValue: floatPtr(1)},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: OptionTimeoutMinutes, Description: "Timeout minutes", Required: true, MinValue: floatPtr(1), MaxValue: setting.MaxWarnTimeoutMinutes},
					},
				},
			},
		},
	}
}

// RegisterCommands overwrites the application's commands, scoped to guildID
// when it is set.
func RegisterCommands(ctx context.Context, r CommandRegistrar, appID, guildID string) error {
	if _, err := r.ApplicationCommandBulkOverwrite(appID, guildID, SlashCommands(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}
	return nil
}

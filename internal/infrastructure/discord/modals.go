package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func modal(customID, title string, inputs ...discordgo.TextInput) *discordgo.InteractionResponse {
	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{in}})
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: rows,
		},
	}
}

// CategoryModal collects the name and description of a new category.
// messageID is the panel message refreshed after submit.
func CategoryModal(messageID string) *discordgo.InteractionResponse {
	return modal(CategoryModalID(messageID), "Add Ticket Category",
		discordgo.TextInput{
			CustomID:  FieldCategoryName,
			Label:     "Category name",
			Style:     discordgo.TextInputShort,
			Required:  true,
			MaxLength: 60,
		},
		discordgo.TextInput{
			CustomID:  FieldCategoryDescription,
			Label:     "Description",
			Style:     discordgo.TextInputParagraph,
			MaxLength: 200,
		},
	)
}

func WarnThresholdModal(messageID string, current int) *discordgo.InteractionResponse {
	return modal(SettingsModalID(TargetWarn, messageID), "Warn Threshold",
		discordgo.TextInput{
			CustomID:  FieldWarnThreshold,
			Label:     "Warnings before timeout",
			Style:     discordgo.TextInputShort,
			Required:  true,
			MaxLength: 3,
			Value:     fmt.Sprint(current),
		},
	)
}

func WarnTimeoutModal(messageID string, current int) *discordgo.InteractionResponse {
	return modal(SettingsModalID(TargetTimeout, messageID), "Timeout Duration",
		discordgo.TextInput{
			CustomID:  FieldWarnTimeoutMinutes,
			Label:     "Timeout minutes",
			Style:     discordgo.TextInputShort,
			Required:  true,
			MaxLength: 4,
			Value:     fmt.Sprint(current),
		},
	)
}

func LinkModal(messageID string, ticketID uint) *discordgo.InteractionResponse {
	return modal(LinkModalID(messageID, ticketID), "Link Ticket",
		discordgo.TextInput{
			CustomID:    FieldLinkedTicketID,
			Label:       "Ticket ID to link",
			Style:       discordgo.TextInputShort,
			Placeholder: "e.g. 42",
			Required:    true,
			MaxLength:   12,
		},
	)
}

func OpenTicketModal(categoryID uint, categoryName string) *discordgo.InteractionResponse {
	return modal(OpenModalID(categoryID), truncate("Open Ticket - "+categoryName, 45),
		discordgo.TextInput{
			CustomID:  FieldTicketReason,
			Label:     "Describe your issue",
			Style:     discordgo.TextInputParagraph,
			Required:  true,
			MaxLength: 500,
		},
	)
}

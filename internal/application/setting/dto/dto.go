package dto

import (
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
)

// SettingsDTO is the effective configuration of a guild.
type SettingsDTO struct {
	GuildID            string `json:"guild_id"`
	TicketParentID     string `json:"ticket_parent_id"`
	StaffRoleID        string `json:"staff_role_id"`
	Timezone           string `json:"timezone"`
	CategorySlots      int    `json:"category_slots"`
	WarnThreshold      int    `json:"warn_threshold"`
	WarnTimeoutMinutes int    `json:"warn_timeout_minutes"`
	SmartReplies       bool   `json:"smart_replies"`
	AISuggestions      bool   `json:"ai_suggestions"`
	AutoPriority       bool   `json:"auto_priority"`
}

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PanelDTO is the content of one page of the settings panel.
type PanelDTO struct {
	Page       int           `json:"page"`
	Settings   SettingsDTO   `json:"settings"`
	Categories []CategoryDTO `json:"categories"`
}

// OpenPanelDTO feeds the public "Open a Ticket" panel.
type OpenPanelDTO struct {
	Categories []CategoryDTO `json:"categories"`
}

func ToSettingsDTO(s *setting.GuildSettings) SettingsDTO {
	return SettingsDTO{
		GuildID:            s.GuildID,
		TicketParentID:     s.TicketParentID,
		StaffRoleID:        s.StaffRoleID,
		Timezone:           s.Timezone,
		CategorySlots:      s.CategorySlots,
		WarnThreshold:      s.WarnThreshold,
		WarnTimeoutMinutes: s.WarnTimeoutMinutes,
		SmartReplies:       s.SmartReplies,
		AISuggestions:      s.AISuggestions,
		AutoPriority:       s.AutoPriority,
	}
}

func ToCategoryDTOs(categories []*ticket.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryDTO{
			ID:          c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
		})
	}
	return out
}

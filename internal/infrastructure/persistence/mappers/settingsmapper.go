package mappers

import (
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
)

func SettingsToModel(s *setting.Stored) *models.GuildSettingsModel {
	return &models.GuildSettingsModel{
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
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func SettingsToDomain(model *models.GuildSettingsModel) *setting.Stored {
	return &setting.Stored{
		GuildID:            model.GuildID,
		TicketParentID:     model.TicketParentID,
		StaffRoleID:        model.StaffRoleID,
		Timezone:           model.Timezone,
		CategorySlots:      model.CategorySlots,
		WarnThreshold:      model.WarnThreshold,
		WarnTimeoutMinutes: model.WarnTimeoutMinutes,
		SmartReplies:       model.SmartReplies,
		AISuggestions:      model.AISuggestions,
		AutoPriority:       model.AutoPriority,
		CreatedAt:          model.CreatedAt.UTC(),
		UpdatedAt:          model.UpdatedAt.UTC(),
	}
}

package migration

import (
	"github.com/swiftticket/swiftticket/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every table the bot owns. casbin_rule is created
// by the casbin adapter itself.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.GuildSettingsModel{},
		&models.CategoryModel{},
		&models.TicketModel{},
		&models.TicketLinkModel{},
		&models.ModActionModel{},
	}
}

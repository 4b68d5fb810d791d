package discord

import (
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// Container is the explicit set of collaborators built once at startup and
// handed to the router. Tests build their own with fakes.
type Container struct {
	Tickets    TicketService
	Settings   SettingService
	Moderation ModerationService
	Owners     OwnerLookup
	Session    Session
	Logger     logger.Interface
}

package usecases

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// CloseTicketUseCase closes a claimed ticket and revokes the creator's send
// permission in the ticket channel.
type CloseTicketUseCase struct {
	ticketTransition
	gateway ChannelGateway
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	views *ViewBuilder,
	publisher TicketPublisher,
	gateway ChannelGateway,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketTransition: newTicketTransition(ticketRepo, settings, policy, views, publisher, logger),
		gateway:          gateway,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error) {
	return uc.run(ctx, cmd, transitionRule{
		name:    "close",
		action:  permvo.ActionClose,
		denied:  "Only the claimer or staff can close.",
		invalid: "Ticket is not claimed.",
		apply:   (*ticket.Ticket).Close,
		afterWrite: func(ctx context.Context, t *ticket.Ticket) error {
			return uc.gateway.SetCreatorAccess(ctx, t.ChannelID(), t.CreatorID(), false)
		},
	})
}

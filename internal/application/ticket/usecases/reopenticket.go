package usecases

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// ReopenTicketUseCase reopens a closed ticket and restores the creator's
// access to the ticket channel.
type ReopenTicketUseCase struct {
	ticketTransition
	gateway ChannelGateway
}

func NewReopenTicketUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	views *ViewBuilder,
	publisher TicketPublisher,
	gateway ChannelGateway,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketTransition: newTicketTransition(ticketRepo, settings, policy, views, publisher, logger),
		gateway:          gateway,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error) {
	return uc.run(ctx, cmd, transitionRule{
		name:    "reopen",
		action:  permvo.ActionReopen,
		denied:  "Only creator or staff can reopen.",
		invalid: "Ticket is not closed.",
		apply:   (*ticket.Ticket).Reopen,
		afterWrite: func(ctx context.Context, t *ticket.Ticket) error {
			return uc.gateway.SetCreatorAccess(ctx, t.ChannelID(), t.CreatorID(), true)
		},
	})
}

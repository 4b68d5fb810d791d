package usecases

import (
	"context"

	"github.com/swiftticket/swiftticket/internal/domain/permission"
	permvo "github.com/swiftticket/swiftticket/internal/domain/permission/value_objects"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

type ClaimTicketUseCase struct {
	ticketTransition
}

func NewClaimTicketUseCase(
	ticketRepo ticket.TicketRepository,
	settings setting.SettingProvider,
	policy *permission.Policy,
	views *ViewBuilder,
	publisher TicketPublisher,
	logger logger.Interface,
) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{
		ticketTransition: newTicketTransition(ticketRepo, settings, policy, views, publisher, logger),
	}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error) {
	return uc.run(ctx, cmd, transitionRule{
		name:    "claim",
		action:  permvo.ActionClaim,
		denied:  "Only staff can claim tickets.",
		invalid: "Ticket is not open.",
		apply:   (*ticket.Ticket).Claim,
	})
}

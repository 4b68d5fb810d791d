package ticket

import (
	"errors"
	"fmt"

	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
)

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrCategoryNotFound = errors.New("category not found")
	// ErrStatusConflict is returned by a conditional status write that matched
	// no row because the stored status no longer equals the expected one.
	ErrStatusConflict = errors.New("ticket status changed concurrently")
)

// InvalidTransitionError is returned when an action is attempted from a status
// that has no edge to the action's target status.
type InvalidTransitionError struct {
	From vo.TicketStatus
	To   vo.TicketStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move ticket from %s to %s", e.From, e.To)
}

func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen    TicketStatus = "OPEN"
	StatusClaimed TicketStatus = "CLAIMED"
	StatusClosed  TicketStatus = "CLOSED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:    true,
	StatusClaimed: true,
	StatusClosed:  true,
}

// Each status has exactly one outgoing edge; the graph is a cycle.
var ticketStatusTransitions = map[TicketStatus]TicketStatus{
	StatusOpen:    StatusClaimed,
	StatusClaimed: StatusClosed,
	StatusClosed:  StatusOpen,
}

var ticketStatusLabels = map[TicketStatus]string{
	StatusOpen:    "Open",
	StatusClaimed: "Claimed",
	StatusClosed:  "Closed",
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) Label() string {
	if label, ok := ticketStatusLabels[ts]; ok {
		return label
	}
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	next, ok := ticketStatusTransitions[ts]
	return ok && next == newStatus
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsClaimed() bool {
	return ts == StatusClaimed
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
)

// CategorySnapshot is the category as it was when the ticket was opened.
type CategorySnapshot struct {
	ID          uint
	Name        string
	Description string
}

type Ticket struct {
	id                   uint
	guildID              string
	channelID            string
	messageID            string
	creatorID            string
	query                string
	status               vo.TicketStatus
	priority             vo.Priority
	priorityReason       string
	category             *CategorySnapshot
	claimedBy            string
	closedBy             string
	reopenedBy           string
	createdAt            time.Time
	claimedAt            *time.Time
	closedAt             *time.Time
	reopenedAt           *time.Time
	reopenCount          int
	lastUserMessageAt    *time.Time
	lastStaffMessageAt   *time.Time
	firstStaffResponseAt *time.Time
	metrics              ResponseMetrics
	updatedAt            time.Time
}

// State carries every persisted field of a ticket. It is used to rebuild an
// aggregate from storage and by mappers to read one back out.
type State struct {
	ID                   uint
	GuildID              string
	ChannelID            string
	MessageID            string
	CreatorID            string
	Query                string
	Status               vo.TicketStatus
	Priority             vo.Priority
	PriorityReason       string
	Category             *CategorySnapshot
	ClaimedBy            string
	ClosedBy             string
	ReopenedBy           string
	CreatedAt            time.Time
	ClaimedAt            *time.Time
	ClosedAt             *time.Time
	ReopenedAt           *time.Time
	ReopenCount          int
	LastUserMessageAt    *time.Time
	LastStaffMessageAt   *time.Time
	FirstStaffResponseAt *time.Time
	Metrics              ResponseMetrics
	UpdatedAt            time.Time
}

func NewTicket(
	guildID string,
	channelID string,
	creatorID string,
	query string,
	priority vo.Priority,
	priorityReason string,
	category *CategorySnapshot,
	now time.Time,
) (*Ticket, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}
	if creatorID == "" {
		return nil, fmt.Errorf("creator ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		guildID:        guildID,
		channelID:      channelID,
		creatorID:      creatorID,
		query:          strings.TrimSpace(query),
		status:         vo.StatusOpen,
		priority:       priority,
		priorityReason: priorityReason,
		category:       category,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(s State) (*Ticket, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", s.Status)
	}
	if !s.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q", s.Priority)
	}

	return &Ticket{
		id:                   s.ID,
		guildID:              s.GuildID,
		channelID:            s.ChannelID,
		messageID:            s.MessageID,
		creatorID:            s.CreatorID,
		query:                s.Query,
		status:               s.Status,
		priority:             s.Priority,
		priorityReason:       s.PriorityReason,
		category:             s.Category,
		claimedBy:            s.ClaimedBy,
		closedBy:             s.ClosedBy,
		reopenedBy:           s.ReopenedBy,
		createdAt:            s.CreatedAt,
		claimedAt:            s.ClaimedAt,
		closedAt:             s.ClosedAt,
		reopenedAt:           s.ReopenedAt,
		reopenCount:          s.ReopenCount,
		lastUserMessageAt:    s.LastUserMessageAt,
		lastStaffMessageAt:   s.LastStaffMessageAt,
		firstStaffResponseAt: s.FirstStaffResponseAt,
		metrics:              s.Metrics,
		updatedAt:            s.UpdatedAt,
	}, nil
}

func (t *Ticket) State() State {
	return State{
		ID:                   t.id,
		GuildID:              t.guildID,
		ChannelID:            t.channelID,
		MessageID:            t.messageID,
		CreatorID:            t.creatorID,
		Query:                t.query,
		Status:               t.status,
		Priority:             t.priority,
		PriorityReason:       t.priorityReason,
		Category:             t.category,
		ClaimedBy:            t.claimedBy,
		ClosedBy:             t.closedBy,
		ReopenedBy:           t.reopenedBy,
		CreatedAt:            t.createdAt,
		ClaimedAt:            t.claimedAt,
		ClosedAt:             t.closedAt,
		ReopenedAt:           t.reopenedAt,
		ReopenCount:          t.reopenCount,
		LastUserMessageAt:    t.lastUserMessageAt,
		LastStaffMessageAt:   t.lastStaffMessageAt,
		FirstStaffResponseAt: t.firstStaffResponseAt,
		Metrics:              t.metrics,
		UpdatedAt:            t.updatedAt,
	}
}

func (t *Ticket) ID() uint                         { return t.id }
func (t *Ticket) GuildID() string                  { return t.guildID }
func (t *Ticket) ChannelID() string                { return t.channelID }
func (t *Ticket) MessageID() string                { return t.messageID }
func (t *Ticket) CreatorID() string                { return t.creatorID }
func (t *Ticket) Query() string                    { return t.query }
func (t *Ticket) Status() vo.TicketStatus          { return t.status }
func (t *Ticket) Priority() vo.Priority            { return t.priority }
func (t *Ticket) PriorityReason() string           { return t.priorityReason }
func (t *Ticket) Category() *CategorySnapshot      { return t.category }
func (t *Ticket) ClaimedBy() string                { return t.claimedBy }
func (t *Ticket) ClosedBy() string                 { return t.closedBy }
func (t *Ticket) ReopenedBy() string               { return t.reopenedBy }
func (t *Ticket) CreatedAt() time.Time             { return t.createdAt }
func (t *Ticket) ClaimedAt() *time.Time            { return t.claimedAt }
func (t *Ticket) ClosedAt() *time.Time             { return t.closedAt }
func (t *Ticket) ReopenedAt() *time.Time           { return t.reopenedAt }
func (t *Ticket) ReopenCount() int                 { return t.reopenCount }
func (t *Ticket) LastUserMessageAt() *time.Time    { return t.lastUserMessageAt }
func (t *Ticket) LastStaffMessageAt() *time.Time   { return t.lastStaffMessageAt }
func (t *Ticket) FirstStaffResponseAt() *time.Time { return t.firstStaffResponseAt }
func (t *Ticket) Metrics() ResponseMetrics         { return t.metrics }
func (t *Ticket) UpdatedAt() time.Time             { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachMessage records the message that renders this ticket.
func (t *Ticket) AttachMessage(messageID string, at time.Time) error {
	if messageID == "" {
		return fmt.Errorf("message ID is required")
	}
	t.messageID = messageID
	t.updatedAt = at
	return nil
}

func (t *Ticket) HasMessage() bool {
	return t.messageID != ""
}

func (t *Ticket) IsCreator(userID string) bool {
	return userID != "" && userID == t.creatorID
}

func (t *Ticket) IsClaimant(userID string) bool {
	return userID != "" && userID == t.claimedBy
}

func (t *Ticket) Claim(actorID string, at time.Time) error {
	if err := t.transition(vo.StatusClaimed, at); err != nil {
		return err
	}
	t.claimedBy = actorID
	t.claimedAt = &at
	return nil
}

func (t *Ticket) Close(actorID string, at time.Time) error {
	if err := t.transition(vo.StatusClosed, at); err != nil {
		return err
	}
	t.closedBy = actorID
	t.closedAt = &at
	return nil
}

// Reopen moves a closed ticket back to open. Claim and close attribution is
// kept so the handling history stays visible.
func (t *Ticket) Reopen(actorID string, at time.Time) error {
	if err := t.transition(vo.StatusOpen, at); err != nil {
		return err
	}
	t.reopenedBy = actorID
	t.reopenedAt = &at
	t.reopenCount++
	return nil
}

func (t *Ticket) transition(to vo.TicketStatus, at time.Time) error {
	if !t.status.CanTransitionTo(to) {
		return &InvalidTransitionError{From: t.status, To: to}
	}
	t.status = to
	t.updatedAt = at
	return nil
}

// RaisePriority escalates the ticket to HIGH. It reports false when the
// ticket already was HIGH. An empty reason keeps the previous one.
func (t *Ticket) RaisePriority(reason string, at time.Time) bool {
	if t.priority == vo.PriorityHigh {
		return false
	}
	t.priority = vo.PriorityHigh
	if reason != "" {
		t.priorityReason = reason
	}
	t.updatedAt = at
	return true
}

func (t *Ticket) RecordUserMessage(at time.Time) {
	t.lastUserMessageAt = &at
	t.updatedAt = at
}

// RecordStaffMessage applies a staff reply at the given time to the response
// metrics and stamps the first staff response when there was none.
func (t *Ticket) RecordStaffMessage(at time.Time) {
	t.metrics = t.metrics.WithStaffResponse(t.createdAt, t.lastUserMessageAt, at)
	if t.firstStaffResponseAt == nil {
		t.firstStaffResponseAt = &at
	}
	t.lastStaffMessageAt = &at
	t.updatedAt = at
}

// LastActivity is the close time when the ticket was closed, else its
// creation time.
func (t *Ticket) LastActivity() time.Time {
	if t.closedAt != nil {
		return *t.closedAt
	}
	return t.createdAt
}

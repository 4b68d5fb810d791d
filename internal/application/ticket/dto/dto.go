package dto

import (
	"io"
	"time"

	"github.com/swiftticket/swiftticket/internal/domain/moderation"
	"github.com/swiftticket/swiftticket/internal/domain/ticket"
)

type TicketDTO struct {
	ID                  uint       `json:"id"`
	GuildID             string     `json:"guild_id"`
	ChannelID           string     `json:"channel_id"`
	MessageID           string     `json:"message_id"`
	CreatorID           string     `json:"creator_id"`
	Query               string     `json:"query"`
	Status              string     `json:"status"`
	StatusLabel         string     `json:"status_label"`
	Priority            string     `json:"priority"`
	PriorityReason      string     `json:"priority_reason,omitempty"`
	CategoryName        string     `json:"category_name,omitempty"`
	CategoryDescription string     `json:"category_description,omitempty"`
	ClaimedBy           string     `json:"claimed_by,omitempty"`
	ClosedBy            string     `json:"closed_by,omitempty"`
	ReopenedBy          string     `json:"reopened_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	ClaimedAt           *time.Time `json:"claimed_at,omitempty"`
	ClosedAt            *time.Time `json:"closed_at,omitempty"`
	ReopenedAt          *time.Time `json:"reopened_at,omitempty"`
	ReopenCount         int        `json:"reopen_count"`
	FirstResponseMS     *int64     `json:"first_response_ms,omitempty"`
	AvgResponseMS       *int64     `json:"avg_response_ms,omitempty"`
	ResponseCount       int        `json:"response_count"`
}

// ModerationDTO is the creator's standing shown on the ticket message.
type ModerationDTO struct {
	Warnings        int64      `json:"warnings"`
	Mutes           int64      `json:"mutes"`
	Bans            int64      `json:"bans"`
	PreviousTickets int64      `json:"previous_tickets"`
	LastSupportAt   *time.Time `json:"last_support_at,omitempty"`
}

// TicketView is everything needed to render one ticket message.
type TicketView struct {
	Ticket      TicketDTO     `json:"ticket"`
	Timezone    string        `json:"timezone"`
	Moderation  ModerationDTO `json:"moderation"`
	Links       []uint        `json:"links"`
	Suggestions []string      `json:"suggestions"`
}

// TicketChannelRequest describes the private channel created for a ticket.
type TicketChannelRequest struct {
	GuildID     string
	ParentID    string
	StaffRoleID string
	CreatorID   string
	CreatorName string
	CreatedAt   time.Time
}

// ChannelMessage is one message read back from a ticket channel.
type ChannelMessage struct {
	ID         string
	AuthorID   string
	AuthorName string
	Content    string
	SentAt     time.Time
}

// File is an attachment to upload.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type UserStatsDTO struct {
	UserID       string     `json:"user_id"`
	Total        int64      `json:"total"`
	Created      int64      `json:"created"`
	Claimed      int64      `json:"claimed"`
	Closed       int64      `json:"closed"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	Timezone     string     `json:"timezone"`
	Last7Days    int        `json:"last_7_days"`
	Last30Days   int        `json:"last_30_days"`
	Last90Days   int        `json:"last_90_days"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	m := t.Metrics()
	d := TicketDTO{
		ID:              t.ID(),
		GuildID:         t.GuildID(),
		ChannelID:       t.ChannelID(),
		MessageID:       t.MessageID(),
		CreatorID:       t.CreatorID(),
		Query:           t.Query(),
		Status:          t.Status().String(),
		StatusLabel:     t.Status().Label(),
		Priority:        t.Priority().String(),
		PriorityReason:  t.PriorityReason(),
		ClaimedBy:       t.ClaimedBy(),
		ClosedBy:        t.ClosedBy(),
		ReopenedBy:      t.ReopenedBy(),
		CreatedAt:       t.CreatedAt(),
		ClaimedAt:       t.ClaimedAt(),
		ClosedAt:        t.ClosedAt(),
		ReopenedAt:      t.ReopenedAt(),
		ReopenCount:     t.ReopenCount(),
		FirstResponseMS: m.FirstResponseMS,
		AvgResponseMS:   m.AvgResponseMS,
		ResponseCount:   m.ResponseCount,
	}
	if c := t.Category(); c != nil {
		d.CategoryName = c.Name
		d.CategoryDescription = c.Description
	}
	return d
}

func ToModerationDTO(s *moderation.Summary, h *ticket.CreatorHistory) ModerationDTO {
	var d ModerationDTO
	if s != nil {
		d.Warnings = s.Warnings
		d.Mutes = s.Mutes
		d.Bans = s.Bans
	}
	if h != nil {
		d.PreviousTickets = h.Total
		d.LastSupportAt = h.LastSupportAt
	}
	return d
}

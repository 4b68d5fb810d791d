package ticket

import (
	"fmt"
	"time"
)

// Link is one direction of a relation between two tickets.
type Link struct {
	id             uint
	guildID        string
	ticketID       uint
	linkedTicketID uint
	createdBy      string
	createdAt      time.Time
}

// NewLinkPair returns both directions of the relation between a and b.
func NewLinkPair(guildID string, a, b uint, createdBy string, now time.Time) ([]*Link, error) {
	if a == 0 || b == 0 {
		return nil, fmt.Errorf("ticket IDs cannot be zero")
	}
	if a == b {
		return nil, fmt.Errorf("a ticket cannot be linked to itself")
	}
	if createdBy == "" {
		return nil, fmt.Errorf("creator ID is required")
	}

	return []*Link{
		{guildID: guildID, ticketID: a, linkedTicketID: b, createdBy: createdBy, createdAt: now},
		{guildID: guildID, ticketID: b, linkedTicketID: a, createdBy: createdBy, createdAt: now},
	}, nil
}

func ReconstructLink(id uint, guildID string, ticketID, linkedTicketID uint, createdBy string, createdAt time.Time) *Link {
	return &Link{
		id:             id,
		guildID:        guildID,
		ticketID:       ticketID,
		linkedTicketID: linkedTicketID,
		createdBy:      createdBy,
		createdAt:      createdAt,
	}
}

func (l *Link) ID() uint             { return l.id }
func (l *Link) GuildID() string      { return l.guildID }
func (l *Link) TicketID() uint       { return l.ticketID }
func (l *Link) LinkedTicketID() uint { return l.linkedTicketID }
func (l *Link) CreatedBy() string    { return l.createdBy }
func (l *Link) CreatedAt() time.Time { return l.createdAt }
func (l *Link) SetID(id uint)        { l.id = id }

package ticket

import (
	"context"
	"time"

	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByMessageID(ctx context.Context, messageID string) (*Ticket, error)
	GetByChannelID(ctx context.Context, channelID string) (*Ticket, error)
	// UpdateStatus writes the status and attribution fields only when the
	// stored status still equals expected. It returns ErrStatusConflict when
	// no row matched.
	UpdateStatus(ctx context.Context, t *Ticket, expected vo.TicketStatus) error
	// UpdateActivity writes the message reference, priority, activity
	// timestamps and response metrics. Status columns are left untouched.
	UpdateActivity(ctx context.Context, t *Ticket) error
	Count(ctx context.Context, filter CountFilter) (int64, error)
	ListByCreatorSince(ctx context.Context, guildID, creatorID string, since time.Time) ([]*Ticket, error)
	GetCreatorHistory(ctx context.Context, guildID, creatorID string) (*CreatorHistory, error)
	GetUserStats(ctx context.Context, guildID, userID string) (*UserStats, error)
}

type CountFilter struct {
	GuildID   string
	CreatorID string
	Status    *vo.TicketStatus
	Since     *time.Time
}

// CreatorHistory summarises the tickets a user has opened in a guild.
type CreatorHistory struct {
	Total int64
	// LastSupportAt is the close time of the latest ticket, else its creation time.
	LastSupportAt *time.Time
}

// UserStats counts tickets a user opened, claimed and closed in a guild.
type UserStats struct {
	Created int64
	Claimed int64
	Closed  int64
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, guildID string, id uint) (*Category, error)
	ListByGuild(ctx context.Context, guildID string) ([]*Category, error)
	CountByGuild(ctx context.Context, guildID string) (int64, error)
}

type LinkRepository interface {
	CreatePair(ctx context.Context, links []*Link) error
	ListLinkedTicketIDs(ctx context.Context, ticketID uint) ([]uint, error)
}

package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxCategoryNameLength        = 60
	MaxCategoryDescriptionLength = 200
)

// Category is a ticket topic offered on the open-ticket panel.
type Category struct {
	id          uint
	guildID     string
	name        string
	description string
	createdAt   time.Time
}

func NewCategory(guildID, name, description string, now time.Time) (*Category, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return nil, fmt.Errorf("category name exceeds maximum length of %d characters", MaxCategoryNameLength)
	}
	if utf8.RuneCountInString(description) > MaxCategoryDescriptionLength {
		return nil, fmt.Errorf("category description exceeds maximum length of %d characters", MaxCategoryDescriptionLength)
	}

	return &Category{
		guildID:     guildID,
		name:        name,
		description: description,
		createdAt:   now,
	}, nil
}

func ReconstructCategory(id uint, guildID, name, description string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	return &Category{
		id:          id,
		guildID:     guildID,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) GuildID() string      { return c.guildID }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// Snapshot copies the fields a ticket keeps about its category.
func (c *Category) Snapshot() *CategorySnapshot {
	return &CategorySnapshot{
		ID:          c.id,
		Name:        c.name,
		Description: c.description,
	}
}

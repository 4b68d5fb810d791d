package moderation

import (
	"fmt"
	"strings"
	"time"
)

type ActionType string

const (
	ActionWarn ActionType = "WARN"
	ActionMute ActionType = "MUTE"
	ActionBan  ActionType = "BAN"
)

func (a ActionType) IsValid() bool {
	return a == ActionWarn || a == ActionMute || a == ActionBan
}

func (a ActionType) String() string {
	return string(a)
}

func NewActionType(s string) (ActionType, error) {
	a := ActionType(strings.ToUpper(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", fmt.Errorf("invalid moderation action: %s", s)
	}
	return a, nil
}

// ModAction is an append-only audit entry.
type ModAction struct {
	id        uint
	guildID   string
	userID    string
	action    ActionType
	reason    string
	createdBy string
	createdAt time.Time
}

func NewModAction(guildID, userID string, action ActionType, reason, createdBy string, now time.Time) (*ModAction, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild ID is required")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid moderation action: %s", action)
	}
	if createdBy == "" {
		return nil, fmt.Errorf("actor ID is required")
	}

	return &ModAction{
		guildID:   guildID,
		userID:    userID,
		action:    action,
		reason:    strings.TrimSpace(reason),
		createdBy: createdBy,
		createdAt: now,
	}, nil
}

func ReconstructModAction(id uint, guildID, userID string, action ActionType, reason, createdBy string, createdAt time.Time) *ModAction {
	return &ModAction{
		id:        id,
		guildID:   guildID,
		userID:    userID,
		action:    action,
		reason:    reason,
		createdBy: createdBy,
		createdAt: createdAt,
	}
}

func (m *ModAction) ID() uint             { return m.id }
func (m *ModAction) GuildID() string      { return m.guildID }
func (m *ModAction) UserID() string       { return m.userID }
func (m *ModAction) Action() ActionType   { return m.action }
func (m *ModAction) Reason() string       { return m.reason }
func (m *ModAction) CreatedBy() string    { return m.createdBy }
func (m *ModAction) CreatedAt() time.Time { return m.createdAt }
func (m *ModAction) SetID(id uint)        { m.id = id }

package discord

import (
	"fmt"
	"strings"
)

// Every interactive component and modal carries a custom id in the grammar
// ticket:<action>:<target>[:<extra>...]. The builders below are the only
// producers of those ids.

const (
	Scope     = "ticket"
	Separator = ":"
)

// Component actions.
const (
	ActionClaim      = "claim"
	ActionClose      = "close"
	ActionTranscript = "transcript"
	ActionReopen     = "reopen"
	ActionLink       = "link"
	ActionOpen       = "open"
	ActionSlots      = "slots"
	ActionCategory   = "category"
	ActionSettings   = "settings"
	ActionToggle     = "toggle"
	ActionPanel      = "panel"
)

// Targets used after the action.
const (
	TargetAdd     = "add"
	TargetCreate  = "create"
	TargetWarn    = "warn"
	TargetTimeout = "timeout"
	TargetPage    = "page"
)

// Modal input ids.
const (
	FieldCategoryName        = "category_name"
	FieldCategoryDescription = "category_description"
	FieldWarnThreshold       = "warn_threshold"
	FieldWarnTimeoutMinutes  = "warn_timeout_minutes"
	FieldTicketReason        = "ticket_reason"
	FieldLinkedTicketID      = "linked_ticket_id"
)

func customID(parts ...string) string {
	return Scope + Separator + strings.Join(parts, Separator)
}

func TicketButtonID(action string, ticketID uint) string {
	return customID(action, fmt.Sprint(ticketID))
}

func SlotsSelectID(half int) string {
	return customID(ActionSlots, fmt.Sprint(half))
}

func OpenSelectID(half int) string {
	return customID(ActionOpen, fmt.Sprint(half))
}

func AddCategoryID() string {
	return customID(ActionCategory, TargetAdd)
}

func SettingsButtonID(target string) string {
	return customID(ActionSettings, target)
}

func ToggleID(feature string) string {
	return customID(ActionToggle, feature)
}

func PanelPageID(page int) string {
	return customID(ActionPanel, TargetPage, fmt.Sprint(page))
}

func CategoryModalID(messageID string) string {
	return customID(ActionCategory, TargetCreate, messageID)
}

func SettingsModalID(target, messageID string) string {
	return customID(ActionSettings, target, messageID)
}

func OpenModalID(categoryID uint) string {
	return customID(ActionOpen, TargetCreate, fmt.Sprint(categoryID))
}

func LinkModalID(messageID string, ticketID uint) string {
	return customID(ActionLink, TargetCreate, messageID, fmt.Sprint(ticketID))
}

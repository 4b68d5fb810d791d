package discord

import (
	"strings"

	"github.com/swiftticket/swiftticket/internal/domain/setting"
	dg "github.com/swiftticket/swiftticket/internal/infrastructure/discord"
)

// Kind is the closed set of interactive commands the bot understands.
type Kind int

const (
	KindUnknown Kind = iota

	// components
	KindCategoryAdd
	KindPanelPage
	KindSlots
	KindSettingsWarn
	KindSettingsTimeout
	KindToggle
	KindOpenSelect
	KindClaim
	KindClose
	KindTranscript
	KindReopen
	KindLink

	// modal submissions
	KindCategoryModal
	KindWarnModal
	KindTimeoutModal
	KindOpenModal
	KindLinkModal

	kindCount
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindCategoryAdd:     "category_add",
	KindPanelPage:       "panel_page",
	KindSlots:           "slots",
	KindSettingsWarn:    "settings_warn",
	KindSettingsTimeout: "settings_timeout",
	KindToggle:          "toggle",
	KindOpenSelect:      "open_select",
	KindClaim:           "claim",
	KindClose:           "close",
	KindTranscript:      "transcript",
	KindReopen:          "reopen",
	KindLink:            "link",
	KindCategoryModal:   "category_modal",
	KindWarnModal:       "warn_modal",
	KindTimeoutModal:    "timeout_modal",
	KindOpenModal:       "open_modal",
	KindLinkModal:       "link_modal",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Command is a decoded custom id.
type Command struct {
	Kind Kind
	// Target is the ticket id, page, feature or category id carried by the id.
	Target string
	// MessageID is the message a modal submission refers back to.
	MessageID string
}

type fields []string

// at returns the i-th field, or "" when the id was cut short.
func (f fields) at(i int) string {
	if i < len(f) {
		return f[i]
	}
	return ""
}

func split(customID string) (fields, bool) {
	f := fields(strings.Split(customID, dg.Separator))
	return f, f.at(0) == dg.Scope
}

var ticketActions = map[string]Kind{
	dg.ActionClaim:      KindClaim,
	dg.ActionClose:      KindClose,
	dg.ActionTranscript: KindTranscript,
	dg.ActionReopen:     KindReopen,
	dg.ActionLink:       KindLink,
}

// DecodeComponent parses the custom id of a button or select.
func DecodeComponent(customID string) Command {
	f, ok := split(customID)
	if !ok {
		return Command{}
	}

	action, target := f.at(1), f.at(2)
	if kind, ok := ticketActions[action]; ok {
		return Command{Kind: kind, Target: target}
	}

	switch action {
	case dg.ActionCategory:
		if target == dg.TargetAdd {
			return Command{Kind: KindCategoryAdd}
		}
	case dg.ActionPanel:
		if target == dg.TargetPage {
			return Command{Kind: KindPanelPage, Target: f.at(3)}
		}
	case dg.ActionSlots:
		return Command{Kind: KindSlots, Target: target}
	case dg.ActionSettings:
		switch target {
		case dg.TargetWarn:
			return Command{Kind: KindSettingsWarn}
		case dg.TargetTimeout:
			return Command{Kind: KindSettingsTimeout}
		}
	case dg.ActionToggle:
		if setting.Feature(target).IsValid() {
			return Command{Kind: KindToggle, Target: target}
		}
	case dg.ActionOpen:
		return Command{Kind: KindOpenSelect, Target: target}
	}
	return Command{}
}

// DecodeModal parses the custom id of a modal submission.
func DecodeModal(customID string) Command {
	f, ok := split(customID)
	if !ok {
		return Command{}
	}

	switch f.at(1) {
	case dg.ActionCategory:
		if f.at(2) == dg.TargetCreate {
			return Command{Kind: KindCategoryModal, MessageID: f.at(3)}
		}
	case dg.ActionSettings:
		switch f.at(2) {
		case dg.TargetWarn:
			return Command{Kind: KindWarnModal, MessageID: f.at(3)}
		case dg.TargetTimeout:
			return Command{Kind: KindTimeoutModal, MessageID: f.at(3)}
		}
	case dg.ActionOpen:
		if f.at(2) == dg.TargetCreate {
			return Command{Kind: KindOpenModal, Target: f.at(3)}
		}
	case dg.ActionLink:
		if f.at(2) == dg.TargetCreate {
			return Command{Kind: KindLinkModal, MessageID: f.at(3), Target: f.at(4)}
		}
	}
	return Command{}
}

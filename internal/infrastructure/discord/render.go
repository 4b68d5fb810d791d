package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	settingdto "github.com/swiftticket/swiftticket/internal/application/setting/dto"
	ticketdto "github.com/swiftticket/swiftticket/internal/application/ticket/dto"
	"github.com/swiftticket/swiftticket/internal/domain/setting"
	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
	"github.com/swiftticket/swiftticket/internal/shared/biztime"
)

const (
	colorOpen    = 0x3B82F6
	colorClaimed = 0xFBBF24
	colorClosed  = 0x9CA3AF
	colorBrand   = 0x7C5CFF

	dash = "-"

	// Select menus hold at most 25 options.
	selectPageSize = 25
)

// NoticeKind selects the accent colour of a notice.
type NoticeKind int

const (
	NoticeError NoticeKind = iota
	NoticeInfo
	NoticeSuccess
)

var noticeColors = map[NoticeKind]int{
	NoticeError:   0xEF4444,
	NoticeInfo:    0x38BDF8,
	NoticeSuccess: 0x22C55E,
}

var statusColors = map[vo.TicketStatus]int{
	vo.StatusOpen:    colorOpen,
	vo.StatusClaimed: colorClaimed,
	vo.StatusClosed:  colorClosed,
}

var titleCase = cases.Title(language.English)

func text(content string) discordgo.TextDisplay {
	return discordgo.TextDisplay{Content: content}
}

func separator() discordgo.Separator {
	return discordgo.Separator{}
}

func container(color int, components ...discordgo.MessageComponent) discordgo.Container {
	return discordgo.Container{AccentColor: &color, Components: components}
}

func bulletBlock(title string, rows [][2]string) discordgo.TextDisplay {
	var b strings.Builder
	b.WriteString("### ")
	b.WriteString(title)
	for _, row := range rows {
		fmt.Fprintf(&b, "\n- **%s:** %s", row[0], row[1])
	}
	return text(b.String())
}

func mention(userID string) string {
	if userID == "" {
		return dash
	}
	return "<@" + userID + ">"
}

// PadID renders a ticket id the way users see it, e.g. 000042.
func PadID(id uint) string {
	return fmt.Sprintf("%06d", id)
}

// FormatDuration renders a latency in ms as 45s, 3m 20s or 2h 5m.
func FormatDuration(ms int64) string {
	sec := ms / 1000
	if sec < 0 {
		sec = 0
	}
	minutes, sec := sec/60, sec%60
	if minutes == 0 {
		return fmt.Sprintf("%ds", sec)
	}
	hours, minutes := minutes/60, minutes%60
	if hours == 0 {
		return fmt.Sprintf("%dm %ds", minutes, sec)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func formatMS(ms *int64) string {
	if ms == nil {
		return dash
	}
	return FormatDuration(*ms)
}

func orDash(s string) string {
	if s == "" {
		return dash
	}
	return s
}

// Notice is a single-container message used for acknowledgements and errors.
func Notice(kind NoticeKind, title, body string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		container(noticeColors[kind],
			text("### "+title),
			separator(),
			text(body),
		),
	}
}

// RenderTicket builds the Components V2 message of one ticket.
func RenderTicket(view *ticketdto.TicketView) []discordgo.MessageComponent {
	t := view.Ticket

	created := t.CreatedAt
	overview := bulletBlock("Ticket Overview", [][2]string{
		{"Ticket ID", PadID(t.ID)},
		{"Status", t.StatusLabel},
		{"Category", orDash(t.CategoryName)},
		{"Created", biztime.DiscordRelative(&created)},
	})

	priority := "### Priority\n- **Level:** " + titleCase.String(strings.ToLower(t.Priority))
	if t.PriorityReason != "" {
		priority += "\n- **Reason:** " + t.PriorityReason
	}

	handling := bulletBlock("Handling", [][2]string{
		{"Claimed by", mention(t.ClaimedBy)},
		{"Claimed", biztime.DiscordRelative(t.ClaimedAt)},
		{"Closed by", mention(t.ClosedBy)},
		{"Closed", biztime.DiscordRelative(t.ClosedAt)},
		{"Reopened", biztime.DiscordRelative(t.ReopenedAt)},
	})

	m := view.Moderation
	moderation := bulletBlock("Moderation History", [][2]string{
		{"Warnings", fmt.Sprint(m.Warnings)},
		{"Mutes", fmt.Sprint(m.Mutes)},
		{"Bans", fmt.Sprint(m.Bans)},
		{"Previous tickets", fmt.Sprint(m.PreviousTickets)},
		{"Last support", biztime.DiscordRelative(m.LastSupportAt)},
	})

	response := bulletBlock("Response Tracking", [][2]string{
		{"First response", formatMS(t.FirstResponseMS)},
		{"Avg response", formatMS(t.AvgResponseMS)},
		{"Responses tracked", fmt.Sprint(t.ResponseCount)},
	})

	components := []discordgo.MessageComponent{
		text(fmt.Sprintf("## New Ticket %s opened!", mention(t.CreatorID))),
		separator(),
		overview,
		separator(),
		text(priority),
	}
	if t.CategoryDescription != "" {
		components = append(components, separator(), text("### Category Details\n"+t.CategoryDescription))
	}
	components = append(components,
		separator(),
		text("### Description"),
		text(orDash(t.Query)),
		separator(),
		handling,
		separator(),
		moderation,
		separator(),
		response,
	)
	if len(view.Suggestions) > 0 {
		lines := make([]string, 0, len(view.Suggestions))
		for _, s := range view.Suggestions {
			lines = append(lines, "- "+s)
		}
		components = append(components, separator(), text("### Suggested Replies\n"+strings.Join(lines, "\n")))
	}

	links := "- None"
	if len(view.Links) > 0 {
		lines := make([]string, 0, len(view.Links))
		for _, id := range view.Links {
			lines = append(lines, "- #"+PadID(id))
		}
		links = strings.Join(lines, "\n")
	}
	components = append(components,
		separator(),
		text("### Linked Tickets\n"+links),
		separator(),
		discordgo.ActionsRow{Components: ticketButtons(t.ID, t.Status)},
	)

	color, ok := statusColors[vo.TicketStatus(t.Status)]
	if !ok {
		color = colorOpen
	}
	return []discordgo.MessageComponent{container(color, components...)}
}

func ticketButtons(ticketID uint, status string) []discordgo.MessageComponent {
	button := func(label, action string, style discordgo.ButtonStyle) discordgo.Button {
		return discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: TicketButtonID(action, ticketID),
		}
	}

	var buttons []discordgo.MessageComponent
	switch vo.TicketStatus(status) {
	case vo.StatusOpen:
		buttons = append(buttons, button("Claim", ActionClaim, discordgo.PrimaryButton))
	case vo.StatusClaimed:
		buttons = append(buttons,
			button("Close", ActionClose, discordgo.DangerButton),
			button("Transcript", ActionTranscript, discordgo.SecondaryButton),
		)
	case vo.StatusClosed:
		buttons = append(buttons,
			button("Transcript", ActionTranscript, discordgo.SecondaryButton),
			button("Reopen", ActionReopen, discordgo.SuccessButton),
		)
	}
	return append(buttons, button("Link", ActionLink, discordgo.SecondaryButton))
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// RenderSettingsPanel builds page 1 (category slots) or page 2 (automation)
// of the admin panel.
func RenderSettingsPanel(p *settingdto.PanelDTO) []discordgo.MessageComponent {
	s := p.Settings
	nav := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Categories", Style: discordgo.SecondaryButton, CustomID: PanelPageID(1), Disabled: p.Page == 1},
		discordgo.Button{Label: "Advanced", Style: discordgo.SecondaryButton, CustomID: PanelPageID(2), Disabled: p.Page == 2},
	}}

	if p.Page == 2 {
		features := fmt.Sprintf("### Enabled Features\n"+
			"- Moderation history in ticket UI\n"+
			"- %s: %s\n"+
			"- Response tracking\n"+
			"- Ticket reopen system\n"+
			"- Ticket linking\n"+
			"- %s: %s\n"+
			"- %s: %s\n"+
			"- Warn threshold: %d -> %dm timeout",
			setting.FeatureAutoPriority.Label(), onOff(s.AutoPriority),
			setting.FeatureSmartReplies.Label(), onOff(s.SmartReplies),
			setting.FeatureAISuggestions.Label(), onOff(s.AISuggestions),
			s.WarnThreshold, s.WarnTimeoutMinutes)

		settingsRow := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Warn threshold", Style: discordgo.SecondaryButton, CustomID: SettingsButtonID(TargetWarn)},
			discordgo.Button{Label: "Timeout", Style: discordgo.SecondaryButton, CustomID: SettingsButtonID(TargetTimeout)},
			discordgo.Button{Label: "Smart replies", Style: discordgo.SecondaryButton, CustomID: ToggleID(string(setting.FeatureSmartReplies))},
			discordgo.Button{Label: "AI suggestions", Style: discordgo.SecondaryButton, CustomID: ToggleID(string(setting.FeatureAISuggestions))},
			discordgo.Button{Label: "Auto priority", Style: discordgo.SecondaryButton, CustomID: ToggleID(string(setting.FeatureAutoPriority))},
		}}

		return []discordgo.MessageComponent{container(colorBrand,
			text("## Advanced Ticket Setup"),
			separator(),
			text("Configure moderation and automation features."),
			separator(),
			text(features),
			separator(),
			settingsRow,
			separator(),
			nav,
		)}
	}

	list := "- No categories yet"
	if len(p.Categories) > 0 {
		lines := make([]string, 0, len(p.Categories))
		for i, c := range p.Categories {
			line := fmt.Sprintf("- **%d.** %s", i+1, c.Name)
			if c.Description != "" {
				line += " - " + c.Description
			}
			lines = append(lines, line)
		}
		list = strings.Join(lines, "\n")
	}

	return []discordgo.MessageComponent{container(colorBrand,
		text("## Ticket Category Slots"),
		separator(),
		text(fmt.Sprintf("Choose how many ticket categories should be available in this server.\n"+
			"Select between **%d and %d** categories, then press **Add Category** to create names.",
			setting.MinCategorySlots, setting.MaxCategorySlots)),
		separator(),
		text(fmt.Sprintf("### Current categories (%d/%d)\n%s", len(p.Categories), s.CategorySlots, list)),
		separator(),
		slotsRow(1, 1, selectPageSize, s.CategorySlots),
		slotsRow(2, selectPageSize+1, setting.MaxCategorySlots, s.CategorySlots),
		separator(),
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Add Category", Style: discordgo.SuccessButton, CustomID: AddCategoryID()},
		}},
		separator(),
		nav,
	)}
}

func slotsRow(half, from, to, selected int) discordgo.ActionsRow {
	options := make([]discordgo.SelectMenuOption, 0, to-from+1)
	for i := from; i <= to; i++ {
		options = append(options, discordgo.SelectMenuOption{
			Label:   fmt.Sprintf("%d categories", i),
			Value:   fmt.Sprint(i),
			Default: i == selected,
		})
	}
	one := 1
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			MenuType:    discordgo.StringSelectMenu,
			CustomID:    SlotsSelectID(half),
			Placeholder: fmt.Sprintf("Select %d-%d categories", from, to),
			MinValues:   &one,
			MaxValues:   1,
			Options:     options,
		},
	}}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// RenderOpenPanel builds the public panel users pick a category from.
func RenderOpenPanel(p *settingdto.OpenPanelDTO) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{
		text("## Open a SwiftTicket"),
		separator(),
		text("Select a category below to open a new ticket. You will be asked for a short description after selecting."),
		separator(),
	}

	if len(p.Categories) == 0 {
		components = append(components, text("No categories are configured yet. Please contact an admin."))
		return []discordgo.MessageComponent{container(colorBrand, components...)}
	}

	for half, start := 1, 0; start < len(p.Categories) && start < setting.MaxCategorySlots; half, start = half+1, start+selectPageSize {
		end := min(start+selectPageSize, len(p.Categories), setting.MaxCategorySlots)
		options := make([]discordgo.SelectMenuOption, 0, end-start)
		for _, c := range p.Categories[start:end] {
			options = append(options, discordgo.SelectMenuOption{
				Label:       truncate(c.Name, 100),
				Value:       fmt.Sprint(c.ID),
				Description: truncate(c.Description, 50),
			})
		}
		one := 1
		if half > 1 {
			components = append(components, separator())
		}
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    OpenSelectID(half),
				Placeholder: fmt.Sprintf("Choose a category (%d-%d)", start+1, min(start+selectPageSize, setting.MaxCategorySlots)),
				MinValues:   &one,
				MaxValues:   1,
				Options:     options,
			},
		}})
	}
	return []discordgo.MessageComponent{container(colorBrand, components...)}
}

// RenderWelcome is posted when the bot joins a guild.
func RenderWelcome(guildName string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{container(colorBrand,
		text("## Welcome to SwiftTicket"),
		separator(),
		text(fmt.Sprintf("SwiftTicket is now active in **%s**.", guildName)),
		separator(),
		text("### Quick setup\n"+
			"- Run **/ticket setup** to pick your ticket category and staff role\n"+
			"- Run **/ticket panel** to configure categories and advanced controls\n"+
			"- Use **/mod log** to record warnings, mutes and bans"),
		separator(),
		text("### What you get\n"+
			"- Ticket lifecycle (Open, Claimed, Closed)\n"+
			"- Priority detection and moderation history\n"+
			"- Response tracking, transcripts and smart replies\n"+
			"- Category builder and linked tickets"),
	)}
}

// RenderUserStats is the /info summary of one member.
func RenderUserStats(s *ticketdto.UserStatsDTO) []discordgo.MessageComponent {
	last := dash
	if s.LastActivity != nil {
		last = biztime.FormatIn(*s.LastActivity, s.Timezone, "2006-01-02 15:04 MST")
	}
	return []discordgo.MessageComponent{container(colorBrand,
		text(fmt.Sprintf("## Ticket Summary for %s", mention(s.UserID))),
		separator(),
		bulletBlock("Totals", [][2]string{
			{"Total tickets", fmt.Sprint(s.Total)},
			{"Created", fmt.Sprint(s.Created)},
			{"Claimed", fmt.Sprint(s.Claimed)},
			{"Closed", fmt.Sprint(s.Closed)},
			{"Last activity", last},
		}),
		separator(),
		bulletBlock("Recent Activity", [][2]string{
			{"Last 7 days", fmt.Sprint(s.Last7Days)},
			{"Last 30 days", fmt.Sprint(s.Last30Days)},
			{"Last 90 days", fmt.Sprint(s.Last90Days)},
		}),
	)}
}

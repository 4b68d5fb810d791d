package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
)

func TestFlaggedKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "none", text: "hello, my order is late", want: nil},
		{name: "uppercase", text: "I want a REFUND", want: []string{"refund"}},
		{name: "inside longer word", text: "steamroller", want: []string{"steam"}},
		{name: "list order", text: "refund my crypto, scam!", want: []string{"scam", "refund", "crypto"}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlaggedKeywords(tt.text))
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		recent   int
		reports  int
		priority vo.Priority
		reason   string
	}{
		{
			name:     "clean",
			text:     "need help with roles",
			recent:   2,
			reports:  1,
			priority: vo.PriorityNormal,
		},
		{
			name:     "volume only",
			text:     "need help",
			recent:   3,
			priority: vo.PriorityHigh,
			reason:   "High ticket volume in 24h",
		},
		{
			name:     "reports only",
			text:     "need help",
			reports:  2,
			priority: vo.PriorityHigh,
			reason:   "Repeated reports on same target",
		},
		{
			name:     "keywords capped at four",
			text:     "idiot stupid hate kill scam",
			priority: vo.PriorityHigh,
			reason:   "Flagged keywords: idiot, stupid, hate, kill",
		},
		{
			name:     "all clauses",
			text:     "refund",
			recent:   5,
			reports:  3,
			priority: vo.PriorityHigh,
			reason:   "High ticket volume in 24h - Repeated reports on same target - Flagged keywords: refund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text, tt.recent, tt.reports)
			assert.Equal(t, tt.priority, got.Priority)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestAnalyze_KeepsAllKeywords(t *testing.T) {
	got := Analyze("idiot stupid hate kill scam", 0, 0)
	assert.Len(t, got.Keywords, 5)
}

func TestSuggestions(t *testing.T) {
	assert.Empty(t, Suggestions("hi there"))
	assert.Equal(t, []string{
		"Provide ban-appeal steps and request context (username, reason, appeal notes).",
		"Ask for order ID, payment method, and transaction date.",
	}, Suggestions("I was BANNED after asking for a refund"))
}

func TestSmartReply(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"no topic", "hi there", "", false},
		{"chargeback has no smart reply", "I filed a chargeback", "", false},
		{"refund", "Need a REFUND", "For refunds, please share your order ID, payment method, and date of purchase.", true},
		{"first match wins", "this scam got me banned, refund me", "It looks like you mentioned a ban. Please include your username, the reason you believe you were banned, and any relevant context.", true},
		{"refund beats scam", "scam, refund", "For refunds, please share your order ID, payment method, and date of purchase.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SmartReply(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Package risk scores ticket and chat text against a fixed list of flagged
// terms. Matching is a case-insensitive substring test, so a term inside a
// longer word still matches.
package risk

import (
	"strings"

	vo "github.com/swiftticket/swiftticket/internal/domain/ticket/valueobjects"
)

const (
	HighVolumeThreshold      = 3
	RepeatedReportsThreshold = 2
	MaxReportedKeywords      = 4

	ReasonHighVolume      = "High ticket volume in 24h"
	ReasonRepeatedReports = "Repeated reports on same target"
	reasonKeywordsPrefix  = "Flagged keywords: "
	reasonSeparator       = " - "
)

var flaggedTerms = []string{
	"idiot",
	"stupid",
	"hate",
	"kill",
	"fuck",
	"scam",
	"fraud",
	"chargeback",
	"refund",
	"paypal",
	"nitro",
	"steam",
	"crypto",
	"bastard",
	"cuxxl",
}

type replyHint struct {
	term       string
	suggestion string
}

var replyHints = []replyHint{
	{"banned", "Provide ban-appeal steps and request context (username, reason, appeal notes)."},
	{"refund", "Ask for order ID, payment method, and transaction date."},
	{"chargeback", "Request evidence and explain chargeback policy."},
	{"scam", "Ask for screenshots, user IDs, and transaction links."},
}

// smartReplies answer the ticket creator directly. Order decides which reply
// wins when several topics match.
var smartReplies = []replyHint{
	{"banned", "It looks like you mentioned a ban. Please include your username, the reason you believe you were banned, and any relevant context."},
	{"refund", "For refunds, please share your order ID, payment method, and date of purchase."},
	{"scam", "If this is a scam report, include screenshots, user IDs involved, and any transaction links."},
}

// Assessment is the outcome of Analyze. Reason is empty for NORMAL.
type Assessment struct {
	Priority vo.Priority
	Reason   string
	Keywords []string
}

// FlaggedKeywords returns the flagged terms contained in text, in list order.
func FlaggedKeywords(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, term := range flaggedTerms {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

// Analyze derives a priority from the text of a new ticket, the creator's
// ticket count over the trailing 24 hours and prior reports on the target.
func Analyze(text string, recentTickets, repeatedReports int) Assessment {
	hits := FlaggedKeywords(text)

	var reasons []string
	if recentTickets >= HighVolumeThreshold {
		reasons = append(reasons, ReasonHighVolume)
	}
	if repeatedReports >= RepeatedReportsThreshold {
		reasons = append(reasons, ReasonRepeatedReports)
	}
	if len(hits) > 0 {
		reasons = append(reasons, KeywordReason(hits))
	}

	if len(reasons) == 0 {
		return Assessment{Priority: vo.PriorityNormal, Keywords: hits}
	}
	return Assessment{
		Priority: vo.PriorityHigh,
		Reason:   strings.Join(reasons, reasonSeparator),
		Keywords: hits,
	}
}

// KeywordReason formats up to MaxReportedKeywords hits as a reason clause.
func KeywordReason(hits []string) string {
	if len(hits) > MaxReportedKeywords {
		hits = hits[:MaxReportedKeywords]
	}
	return reasonKeywordsPrefix + strings.Join(hits, ", ")
}

// Suggestions returns canned staff replies for topics mentioned in text.
func Suggestions(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, h := range replyHints {
		if strings.Contains(lower, h.term) {
			out = append(out, h.suggestion)
		}
	}
	return out
}

// SmartReply returns the reply for the first topic in text, if any.
func SmartReply(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, h := range smartReplies {
		if strings.Contains(lower, h.term) {
			return h.suggestion, true
		}
	}
	return "", false
}

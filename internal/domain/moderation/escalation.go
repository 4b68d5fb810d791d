package moderation

// AutoTimeoutReason is the audit reason attached to an automatic timeout.
const AutoTimeoutReason = "Auto-timeout threshold reached"

// Summary counts a user's moderation history in one guild.
type Summary struct {
	Warnings int64
	Mutes    int64
	Bans     int64
}

// ShouldTimeout reports whether a member with the given warning count must be
// timed out. The comparison is >=, so every qualifying warning past the
// threshold triggers again.
func ShouldTimeout(warnings int64, threshold int) bool {
	if threshold < 1 {
		return false
	}
	return warnings >= int64(threshold)
}

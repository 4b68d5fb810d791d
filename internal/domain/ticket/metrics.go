package ticket

import (
	"time"

	"github.com/swiftticket/swiftticket/internal/shared/biztime"
)

// ResponseMetrics tracks staff response latency for one ticket.
// AvgResponseMS is nil until ResponseCount > 0.
type ResponseMetrics struct {
	FirstResponseMS *int64
	AvgResponseMS   *int64
	ResponseCount   int
}

// NextRollingAverage folds delta into a mean over count samples and returns
// the new mean and sample count: avg' = (avg*(n-1) + delta) / n, rounded half
// up to whole milliseconds.
func NextRollingAverage(avg int64, count int, delta int64) (int64, int) {
	n := count + 1
	return roundDiv(avg*int64(n-1)+delta, int64(n)), n
}

// roundDiv returns num/den rounded half toward positive infinity. den > 0.
func roundDiv(num, den int64) int64 {
	return floorDiv(2*num+den, 2*den)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// WithStaffResponse returns the metrics after a staff message at now.
// The first-response latency is recorded once. The rolling average only moves
// when a user message has been recorded.
func (m ResponseMetrics) WithStaffResponse(createdAt time.Time, lastUserMessageAt *time.Time, now time.Time) ResponseMetrics {
	next := m

	if next.FirstResponseMS == nil {
		first := biztime.MillisBetween(createdAt, now)
		next.FirstResponseMS = &first
	}

	if lastUserMessageAt != nil {
		var avg int64
		if m.AvgResponseMS != nil {
			avg = *m.AvgResponseMS
		}
		newAvg, n := NextRollingAverage(avg, m.ResponseCount, biztime.MillisBetween(*lastUserMessageAt, now))
		next.AvgResponseMS = &newAvg
		next.ResponseCount = n
	}

	return next
}

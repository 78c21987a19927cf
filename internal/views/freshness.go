package views

import (
	"strconv"
	"time"
)

// OfflineAfter is the single sync-staleness threshold shared by the fleet
// panel, the driver roster and the header sync badge. Keep it in one place:
// the three views must never disagree on what "offline" means.
const OfflineAfter = time.Hour

// dateLayout is the coarsest freshness bucket, a localized calendar date.
const dateLayout = "Jan 2, 2006"

// RelativeAge renders a timestamp as the age label the dashboard shows next
// to sync times and exception rows. A clock that reads earlier than the
// timestamp clamps to "Just now"; a zero timestamp cannot be aged at all and
// falls through to the calendar-date bucket.
func RelativeAge(ts, now time.Time) string {
	if ts.IsZero() {
		return ts.Format(dateLayout)
	}

	diff := now.Sub(ts)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return strconv.Itoa(int(diff/time.Minute)) + "m ago"
	case diff < 24*time.Hour:
		return strconv.Itoa(int(diff/time.Hour)) + "h ago"
	default:
		return ts.Format(dateLayout)
	}
}

// IsOffline reports whether a last-sync timestamp is stale. The boundary is
// strict: an age of exactly one hour still counts as online. A zero timestamp
// has never synced and is treated as offline.
func IsOffline(lastSync, now time.Time) bool {
	if lastSync.IsZero() {
		return true
	}
	return now.Sub(lastSync) > OfflineAfter
}

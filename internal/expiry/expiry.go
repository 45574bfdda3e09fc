// Package expiry classifies inventory items by how many days remain before
// they spoil.
package expiry

import (
	"math"
	"time"
)

// Window is the number of days ahead within which an item counts as expiring.
const Window = 3

const day = 24 * time.Hour

type Status string

const (
	StatusExpired Status = "expired"
	StatusUseSoon Status = "use_soon"
	StatusFresh   Status = "fresh"
)

// DaysUntil returns the number of days from now until expiresAt, rounded up.
// An item expiring two hours from now is one day away; one that expired two
// hours ago is zero days away.
func DaysUntil(expiresAt, now time.Time) int {
	return int(math.Ceil(float64(expiresAt.Sub(now)) / float64(day)))
}

// InWindow reports whether days falls in (0, Window].
func InWindow(days int) bool {
	return days > 0 && days <= Window
}

// StatusOf maps a day count to the badge shown next to an item.
func StatusOf(days int) Status {
	switch {
	case days <= 0:
		return StatusExpired
	case days <= Window:
		return StatusUseSoon
	default:
		return StatusFresh
	}
}

package booking

import "time"

// PurchaseBudget is how long a traveler has to finish paying once a
// purchase session opens. The window is fixed; it does not pause or
// reset between steps.
const PurchaseBudget = 5 * time.Minute

// Clock abstracts time so the flow can be tested without sleeping
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock
func SystemClock() Clock { return realClock{} }

// Remaining returns how much of the purchase budget is left, never
// negative. A session resumed after its window simply reads zero and
// aborts on the next guard check.
func Remaining(start, now time.Time) time.Duration {
	elapsed := now.Sub(start)
	if elapsed >= PurchaseBudget {
		return 0
	}
	return PurchaseBudget - elapsed
}

// Expired reports whether the purchase window has closed
func Expired(start, now time.Time) bool {
	return Remaining(start, now) == 0
}

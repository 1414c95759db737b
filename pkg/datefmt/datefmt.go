package datefmt

import "time"

// Layout is the long US English date layout, e.g. "January 5, 2024".
const Layout = "January 2, 2006"

// Format returns the calendar date of t in the form "January 5, 2024".
// The date is taken in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

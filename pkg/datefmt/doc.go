// Package datefmt renders calendar dates as long-form US English strings such as
// "January 5, 2024".
//
// The output matches what a browser produces for
// toLocaleDateString("en-US", {year: "numeric", month: "long", day: "numeric"}):
// full month name, day of month without a leading zero and the year. Only the
// calendar date of the value is used; the time of day is ignored.
//
// Month names come from the time package and are always English, so the result
// does not depend on the host locale or environment. The package is stateless
// and safe for concurrent use.
//
// # Usage
//
//	published := time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC)
//	s := datefmt.Format(published)
//	// s == "January 5, 2024"
//
// The date is read in the location carried by the value. Convert first if the
// date should be shown for a different time zone:
//
//	s := datefmt.Format(published.In(newYork))
//
// Layout is exported for the reverse direction:
//
//	t, err := time.Parse(datefmt.Layout, "January 5, 2024")
package datefmt

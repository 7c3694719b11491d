package calendar

import (
	"time"

	"cloud.google.com/go/civil"
)

const (
	dateLayout  = "2006-01-02"
	longLayout  = "January _2, 2006"
	shortLayout = "01/02/2006"
)

// DateString renders d as "2026-02-22".
func DateString(d civil.Date) string {
	return midnight(d).Format(dateLayout)
}

// LongDate renders d as "February 22, 2026". Single-digit days are padded
// with a space: "February  5, 2026". Month names are always English.
func LongDate(d civil.Date) string {
	return midnight(d).Format(longLayout)
}

// ShortDate renders d as "02/22/2026".
func ShortDate(d civil.Date) string {
	return midnight(d).Format(shortLayout)
}

// ISO8601 renders t as RFC 3339, e.g. "2026-02-22T14:05:00+01:00".
func ISO8601(t time.Time) string {
	return t.Format(time.RFC3339)
}

// RFC2822 renders t as "Sun, 22 Feb 2026 14:05:00 +0100".
func RFC2822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

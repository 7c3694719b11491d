// Package calendar answers simple questions about calendar dates and
// renders dates and timestamps in a few fixed formats.
package calendar

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/ErlanBelekov/period/clock"
)

// Now returns c's reading. Pass clock.System{} for the local wall clock.
func Now(c clock.Clock) time.Time {
	return c.Now()
}

// Today returns the date of c's reading, in the reading's location.
func Today(c clock.Clock) civil.Date {
	return civil.DateOf(c.Now())
}

func IsWeekend(d civil.Date) bool {
	switch midnight(d).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

func IsWeekday(d civil.Date) bool {
	return !IsWeekend(d)
}

// DayOfYear returns the ordinal day, 1 for January 1.
func DayOfYear(d civil.Date) int {
	return midnight(d).YearDay()
}

// DaysInMonth returns the length of the month containing d.
func DaysInMonth(d civil.Date) int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekOfYear returns the ISO 8601 week number.
func WeekOfYear(d civil.Date) int {
	_, week := midnight(d).ISOWeek()
	return week
}

func midnight(d civil.Date) time.Time {
	return d.In(time.UTC)
}

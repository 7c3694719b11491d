package relative

import (
	"fmt"
	"strings"
	"time"
)

// Unit selects the granularity of an offset.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var units = [...]unitSpec{
	Second: {name: "seconds", ago: "SecondsAgo", fromNow: "SecondsFromNow", shift: fixed(time.Second)},
	Minute: {name: "minutes", ago: "MinutesAgo", fromNow: "MinutesFromNow", shift: fixed(time.Minute)},
	Hour:   {name: "hours", ago: "HoursAgo", fromNow: "HoursFromNow", shift: fixed(time.Hour)},
	Day:    {name: "days", ago: "DaysAgo", fromNow: "DaysFromNow", shift: fixed(24 * time.Hour)},
	Week:   {name: "weeks", ago: "WeeksAgo", fromNow: "WeeksFromNow", shift: fixed(7 * 24 * time.Hour)},
	Month:  {name: "months", ago: "MonthsAgo", fromNow: "MonthsFromNow", shift: calendarMonths(1)},
	Year:   {name: "years", ago: "YearsAgo", fromNow: "YearsFromNow", shift: calendarMonths(12)},
}

var unitNames = map[string]Unit{
	"s": Second, "sec": Second, "second": Second, "seconds": Second,
	"m": Minute, "min": Minute, "minute": Minute, "minutes": Minute,
	"h": Hour, "hr": Hour, "hour": Hour, "hours": Hour,
	"d": Day, "day": Day, "days": Day,
	"w": Week, "wk": Week, "week": Week, "weeks": Week,
	"mo": Month, "month": Month, "months": Month,
	"y": Year, "yr": Year, "year": Year, "years": Year,
}

// ParseUnit accepts singular, plural and short unit names, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// Units lists every unit from finest to coarsest.
func Units() []Unit {
	return []Unit{Second, Minute, Hour, Day, Week, Month, Year}
}

func (u Unit) valid() bool { return u >= Second && u <= Year }

// String returns the plural unit name used in error messages, e.g. "days".
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return units[u].name
}

// Ago resolves n units of u before now.
func (e *Engine) Ago(u Unit, n int64) (Moment, error) {
	if !u.valid() {
		return Moment{}, fmt.Errorf("%w: %s", ErrUnknownUnit, u)
	}
	return e.resolve(units[u], n, past)
}

// FromNow resolves n units of u after now.
func (e *Engine) FromNow(u Unit, n int64) (Moment, error) {
	if !u.valid() {
		return Moment{}, fmt.Errorf("%w: %s", ErrUnknownUnit, u)
	}
	return e.resolve(units[u], n, future)
}

// Ago is Engine.Ago on the system clock.
func Ago(u Unit, n int64) (Moment, error) { return defaultEngine.Ago(u, n) }

// FromNow is Engine.FromNow on the system clock.
func FromNow(u Unit, n int64) (Moment, error) { return defaultEngine.FromNow(u, n) }

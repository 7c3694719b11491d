package relative

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Every XxxAgo/XxxFromNow pair below fails with NegativeValueError when n
// is negative and with OverflowError when n units cannot be represented or
// the result lands outside years MinYear..MaxYear. Zero yields the current
// moment.

func (e *Engine) SecondsAgo(n int64) (Moment, error)     { return e.resolve(units[Second], n, past) }
func (e *Engine) SecondsFromNow(n int64) (Moment, error) { return e.resolve(units[Second], n, future) }
func (e *Engine) MinutesAgo(n int64) (Moment, error)     { return e.resolve(units[Minute], n, past) }
func (e *Engine) MinutesFromNow(n int64) (Moment, error) { return e.resolve(units[Minute], n, future) }
func (e *Engine) HoursAgo(n int64) (Moment, error)       { return e.resolve(units[Hour], n, past) }
func (e *Engine) HoursFromNow(n int64) (Moment, error)   { return e.resolve(units[Hour], n, future) }
func (e *Engine) DaysAgo(n int64) (Moment, error)        { return e.resolve(units[Day], n, past) }
func (e *Engine) DaysFromNow(n int64) (Moment, error)    { return e.resolve(units[Day], n, future) }
func (e *Engine) WeeksAgo(n int64) (Moment, error)       { return e.resolve(units[Week], n, past) }
func (e *Engine) WeeksFromNow(n int64) (Moment, error)   { return e.resolve(units[Week], n, future) }

// MonthsAgo steps back n calendar months, clamping the day of month when
// the target month is shorter.
func (e *Engine) MonthsAgo(n int64) (Moment, error) { return e.resolve(units[Month], n, past) }

// MonthsFromNow steps forward n calendar months, clamping the day of month
// when the target month is shorter.
func (e *Engine) MonthsFromNow(n int64) (Moment, error) { return e.resolve(units[Month], n, future) }

// YearsAgo is MonthsAgo(n*12), with the multiplication saturating.
func (e *Engine) YearsAgo(n int64) (Moment, error) { return e.resolve(units[Year], n, past) }

// YearsFromNow is MonthsFromNow(n*12), with the multiplication saturating.
func (e *Engine) YearsFromNow(n int64) (Moment, error) { return e.resolve(units[Year], n, future) }

// Yesterday returns the date one day before today.
//
// It panics only if the clock reads the first day of year MinYear, which
// cannot happen on a working system.
func (e *Engine) Yesterday() civil.Date {
	return mustDate(e.DaysAgo(1))
}

// Tomorrow returns the date one day after today.
//
// It panics only if the clock reads the last day of year MaxYear.
func (e *Engine) Tomorrow() civil.Date {
	return mustDate(e.DaysFromNow(1))
}

func mustDate(m Moment, err error) civil.Date {
	if err != nil {
		panic(fmt.Sprintf("relative: clock outside representable range: %v", err))
	}
	return m.Date()
}

func SecondsAgo(n int64) (Moment, error)     { return defaultEngine.SecondsAgo(n) }
func SecondsFromNow(n int64) (Moment, error) { return defaultEngine.SecondsFromNow(n) }
func MinutesAgo(n int64) (Moment, error)     { return defaultEngine.MinutesAgo(n) }
func MinutesFromNow(n int64) (Moment, error) { return defaultEngine.MinutesFromNow(n) }
func HoursAgo(n int64) (Moment, error)       { return defaultEngine.HoursAgo(n) }
func HoursFromNow(n int64) (Moment, error)   { return defaultEngine.HoursFromNow(n) }
func DaysAgo(n int64) (Moment, error)        { return defaultEngine.DaysAgo(n) }
func DaysFromNow(n int64) (Moment, error)    { return defaultEngine.DaysFromNow(n) }
func WeeksAgo(n int64) (Moment, error)       { return defaultEngine.WeeksAgo(n) }
func WeeksFromNow(n int64) (Moment, error)   { return defaultEngine.WeeksFromNow(n) }
func MonthsAgo(n int64) (Moment, error)      { return defaultEngine.MonthsAgo(n) }
func MonthsFromNow(n int64) (Moment, error)  { return defaultEngine.MonthsFromNow(n) }
func YearsAgo(n int64) (Moment, error)       { return defaultEngine.YearsAgo(n) }
func YearsFromNow(n int64) (Moment, error)   { return defaultEngine.YearsFromNow(n) }

// Yesterday is Engine.Yesterday on the system clock.
func Yesterday() civil.Date { return defaultEngine.Yesterday() }

// Tomorrow is Engine.Tomorrow on the system clock.
func Tomorrow() civil.Date { return defaultEngine.Tomorrow() }

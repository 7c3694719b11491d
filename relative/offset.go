// Package relative computes moments offset from the current time by a
// whole number of seconds, minutes, hours, days, weeks, months or years.
//
// Direction is chosen by the function, never by the sign of the magnitude:
//
//	m, err := relative.DaysAgo(3)      // three days in the past
//	m, err = relative.DaysFromNow(3)   // three days in the future
//	_, err = relative.DaysAgo(-3)      // "days must be positive. Did you mean DaysFromNow(3)?"
package relative

import (
	"math"
	"time"

	"github.com/ErlanBelekov/period/clock"
)

// Offsets may land anywhere in these proleptic Gregorian years. A result
// outside them is reported as an OverflowError.
const (
	MinYear = -262143
	MaxYear = 262142
)

const secondsPerDay = 24 * 60 * 60

// Unix seconds a little beyond MinYear..MaxYear, wide enough for any zone
// offset. time.Unix is exact inside them; inRange then checks the year.
var (
	minUnix = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - secondsPerDay
	maxUnix = time.Date(MaxYear+1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() + secondsPerDay
)

type direction int

const (
	past direction = iota
	future
)

func (d direction) String() string {
	if d == past {
		return "ago"
	}
	return "from_now"
}

// shiftFunc moves t by n units in the given direction. It reports false
// when n cannot be turned into a delta or the result leaves the
// representable range.
type shiftFunc func(t time.Time, n int64, dir direction) (time.Time, bool)

// unitSpec ties a unit to its error labels and its arithmetic.
type unitSpec struct {
	name    string
	ago     string
	fromNow string
	shift   shiftFunc
}

// Engine resolves offsets against a Clock. The zero value is not usable;
// construct one with NewEngine.
type Engine struct {
	clock clock.Clock
}

func NewEngine(c clock.Clock) *Engine {
	return &Engine{clock: c}
}

var defaultEngine = NewEngine(clock.System{})

func (e *Engine) resolve(spec unitSpec, n int64, dir direction) (Moment, error) {
	if n < 0 {
		mirror := spec.fromNow
		if dir == future {
			mirror = spec.ago
		}
		return Moment{}, NegativeValueError{Unit: spec.name, Suggestion: mirror, Value: magnitude(n)}
	}

	t, ok := spec.shift(e.clock.Now(), n, dir)
	if !ok {
		return Moment{}, OverflowError{Unit: spec.name, Value: n}
	}
	return Moment{t: t}, nil
}

// magnitude is |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n >= 0 {
		return uint64(n)
	}
	return uint64(-(n + 1)) + 1
}

// fixed shifts by n*step. The delta is carried as whole seconds rather than
// a time.Duration, which cannot span more than about 292 years.
func fixed(step time.Duration) shiftFunc {
	stepSeconds := int64(step / time.Second)
	return func(t time.Time, n int64, dir direction) (time.Time, bool) {
		if n > math.MaxInt64/stepSeconds {
			return time.Time{}, false
		}
		secs := n * stepSeconds
		if dir == past {
			secs = -secs
		}

		base := t.Unix()
		if (secs > 0 && base > maxUnix-secs) || (secs < 0 && base < minUnix-secs) {
			return time.Time{}, false
		}
		return inRange(time.Unix(base+secs, int64(t.Nanosecond())).In(t.Location()))
	}
}

// calendarMonths shifts by n*perUnit whole months. The month count is
// capped at math.MaxUint32 so that absurd magnitudes fail fast instead of
// being walked through the calendar.
func calendarMonths(perUnit int64) shiftFunc {
	return func(t time.Time, n int64, dir direction) (time.Time, bool) {
		months := saturatingMul(n, perUnit)
		if months > math.MaxUint32 {
			return time.Time{}, false
		}
		if dir == past {
			months = -months
		}
		return addMonths(t, months)
	}
}

// addMonths moves t by a signed number of months, keeping the time of day
// and clamping the day to the length of the target month, so Jan 31 plus
// one month is the last day of February.
func addMonths(t time.Time, months int64) (time.Time, bool) {
	y, m, d := t.Date()
	total := int64(y)*12 + int64(m-1) + months
	year := floorDiv(total, 12)
	if year < MinYear || year > MaxYear {
		return time.Time{}, false
	}
	month := time.Month(total-year*12) + 1

	if last := daysIn(int(year), month); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(int(year), month, d, hh, mm, ss, t.Nanosecond(), t.Location()), true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func inRange(t time.Time) (time.Time, bool) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return time.Time{}, false
	}
	return t, true
}

func saturatingMul(n, k int64) int64 {
	if n > math.MaxInt64/k {
		return math.MaxInt64
	}
	return n * k
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

package relative

import (
	"time"

	"cloud.google.com/go/civil"
)

// Moment is a resolved point in time returned by every offset function.
// It is a plain value: copying it is free and nothing ever mutates it.
//
// Use Time, Date or TimeOfDay to pick the representation you need.
type Moment struct {
	t time.Time
}

// Time returns the full timestamp.
func (m Moment) Time() time.Time { return m.t }

// Date returns the calendar date, discarding the time of day.
func (m Moment) Date() civil.Date { return civil.DateOf(m.t) }

// TimeOfDay returns the clock reading, discarding the calendar date.
func (m Moment) TimeOfDay() civil.Time { return civil.TimeOf(m.t) }

// Compare returns -1, 0 or +1 as m is before, equal to or after o.
func (m Moment) Compare(o Moment) int { return m.t.Compare(o.t) }

func (m Moment) Before(o Moment) bool { return m.t.Before(o.t) }

func (m Moment) After(o Moment) bool { return m.t.After(o.t) }

// Equal reports whether m and o denote the same instant, regardless of
// location.
func (m Moment) Equal(o Moment) bool { return m.t.Equal(o.t) }

func (m Moment) String() string { return m.t.Format(time.RFC3339Nano) }

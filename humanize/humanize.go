// Package humanize describes how far a timestamp is from now in short
// English phrases such as "3 days ago", "yesterday" or "in a month".
//
// Months and years are the flat 30 and 365 day approximations; they do not
// follow the calendar.
package humanize

import (
	"fmt"
	"math"
	"time"

	"github.com/ErlanBelekov/period/clock"
)

const (
	minute int64 = 60
	hour         = 60 * minute
	day          = 24 * hour
	month        = 30 * day
	year         = 365 * day
)

// bucket covers deltas below its bound that no earlier bucket claimed.
// A bucket with a divisor renders "{n} {noun}(s)"; one without uses its
// fixed phrases.
type bucket struct {
	below   int64
	divisor int64
	noun    string
	past    string
	future  string
}

// Order matters: the first bucket whose bound exceeds the delta wins.
var buckets = []bucket{
	{below: 30, past: "just now", future: "just now"},
	{below: 90, past: "a minute ago", future: "in a minute"},
	{below: 45 * minute, divisor: minute, noun: "minute"},
	{below: 90 * minute, past: "an hour ago", future: "in an hour"},
	{below: 22 * hour, divisor: hour, noun: "hour"},
	{below: 36 * hour, past: "yesterday", future: "tomorrow"},
	{below: 25 * day, divisor: day, noun: "day"},
	{below: 45 * day, past: "a month ago", future: "in a month"},
	{below: 10 * month, divisor: month, noun: "month"},
	{below: 18 * month, past: "a year ago", future: "in a year"},
	{below: math.MaxInt64, divisor: year, noun: "year"},
}

func (b bucket) phrase(abs int64, isPast bool) string {
	if b.divisor == 0 {
		if isPast {
			return b.past
		}
		return b.future
	}

	n := abs / b.divisor
	noun := b.noun
	if n != 1 {
		noun += "s"
	}
	if isPast {
		return fmt.Sprintf("%d %s ago", n, noun)
	}
	return fmt.Sprintf("in %d %s", n, noun)
}

// Humanizer renders phrases relative to its clock.
type Humanizer struct {
	clock clock.Clock
}

func New(c clock.Clock) *Humanizer {
	return &Humanizer{clock: c}
}

// Humanize describes t relative to the humanizer's clock.
func (h *Humanizer) Humanize(t time.Time) string {
	return Between(t, h.clock.Now())
}

var system = New(clock.System{})

// Humanize describes t relative to the local wall clock.
//
//	humanize.Humanize(time.Now().Add(-5 * time.Minute)) // "5 minutes ago"
//	humanize.Humanize(time.Now().Add(2 * time.Hour))    // "in 2 hours"
func Humanize(t time.Time) string {
	return system.Humanize(t)
}

// Between describes t relative to now. It never fails; equal instants are
// "just now".
func Between(t, now time.Time) string {
	secs := wholeSeconds(now, t)
	isPast := secs >= 0
	abs := secs
	switch {
	case abs == math.MinInt64:
		abs = math.MaxInt64
	case abs < 0:
		abs = -abs
	}

	for _, b := range buckets {
		if abs < b.below {
			return b.phrase(abs, isPast)
		}
	}
	return buckets[len(buckets)-1].phrase(abs, isPast)
}

// wholeSeconds returns a−b truncated toward zero, saturating at the int64
// bounds. It works from Unix seconds because time.Duration saturates after
// roughly 292 years.
func wholeSeconds(a, b time.Time) int64 {
	x, y := a.Unix(), b.Unix()
	switch {
	case y < 0 && x > math.MaxInt64+y:
		return math.MaxInt64
	case y > 0 && x < math.MinInt64+y:
		return math.MinInt64
	}
	secs := x - y
	nanos := a.Nanosecond() - b.Nanosecond()
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return secs
}

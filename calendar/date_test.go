package calendar_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/ErlanBelekov/period/calendar"
	"github.com/ErlanBelekov/period/clock"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestIsWeekend(t *testing.T) {
	monday := date(2026, time.February, 23)
	want := []bool{false, false, false, false, false, true, true} // Mon..Sun

	for i, weekend := range want {
		d := monday.AddDays(i)
		if got := calendar.IsWeekend(d); got != weekend {
			t.Errorf("IsWeekend(%s) = %v, want %v", d, got, weekend)
		}
		if got := calendar.IsWeekday(d); got == weekend {
			t.Errorf("IsWeekday(%s) = %v, want %v", d, got, !weekend)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		d    civil.Date
		want int
	}{
		{date(2026, time.January, 1), 1},
		{date(2026, time.December, 31), 365},
		{date(2028, time.December, 31), 366},
		{date(2028, time.February, 29), 60},
		{date(2028, time.March, 1), 61},
		{date(2026, time.March, 1), 60},
	}

	for _, tt := range tests {
		if got := calendar.DayOfYear(tt.d); got != tt.want {
			t.Errorf("DayOfYear(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		d    civil.Date
		want int
	}{
		{date(2026, time.January, 15), 31},
		{date(2026, time.February, 1), 28},
		{date(2028, time.February, 10), 29},
		{date(1900, time.February, 10), 28},
		{date(2000, time.February, 10), 29},
		{date(2026, time.April, 30), 30},
		{date(2026, time.December, 31), 31},
	}

	for _, tt := range tests {
		if got := calendar.DaysInMonth(tt.d); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		d    civil.Date
		want int
	}{
		{date(2026, time.January, 1), 1},
		{date(2026, time.February, 22), 8},
		{date(2026, time.December, 28), 53},
		{date(2027, time.January, 1), 53},
		{date(2027, time.January, 4), 1},
	}

	for _, tt := range tests {
		if got := calendar.WeekOfYear(tt.d); got != tt.want {
			t.Errorf("WeekOfYear(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestNowAndToday_SystemClock(t *testing.T) {
	before := time.Now()
	got := calendar.Now(clock.System{})
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, want within [%v, %v]", got, before, after)
	}

	today := calendar.Today(clock.System{})
	if today != civil.DateOf(before) && today != civil.DateOf(time.Now()) {
		t.Errorf("Today() = %v, want %v", today, civil.DateOf(before))
	}
}

func TestNowAndToday_FixedClock(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	at := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	c := clock.Fixed(at)

	if got := calendar.Now(c); !got.Equal(at) {
		t.Errorf("Now() = %v, want %v", got, at)
	}
	if got, want := calendar.Today(c), date(2026, time.March, 14); got != want {
		t.Errorf("Today() = %v, want %v", got, want)
	}
}

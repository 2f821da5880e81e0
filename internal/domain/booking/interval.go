package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInterval      = errors.New("interval start must be before end")
	ErrInvalidBusinessHours = errors.New("invalid business hours")
)

// Interval is a half-open time range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

// Overlaps reports whether two half-open ranges intersect. Touching
// endpoints (a.end == b.start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// StartsOnOrAfterDay reports whether the interval starts on now's calendar
// day or later. Same-day bookings pass regardless of the current
// time of day; past dates do not.
func (iv Interval) StartsOnOrAfterDay(now time.Time) bool {
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return !iv.start.Before(dayStart)
}

// BusinessHours is the wall-clock window within which bookings are permitted.
type BusinessHours struct {
	openHour  int
	closeHour int
}

func NewBusinessHours(openHour, closeHour int) (BusinessHours, error) {
	if openHour < 0 || closeHour > 23 || openHour >= closeHour {
		return BusinessHours{}, ErrInvalidBusinessHours
	}
	return BusinessHours{openHour: openHour, closeHour: closeHour}, nil
}

func (bh BusinessHours) OpenHour() int {
	return bh.openHour
}

func (bh BusinessHours) CloseHour() int {
	return bh.closeHour
}

// WithinBusinessHours reports whether the whole interval lies inside the
// window. An interval that starts before opening or ends after closing is
// rejected outright; the engine never shrinks a booking to fit.
func (iv Interval) WithinBusinessHours(bh BusinessHours) bool {
	// A single window is one calendar day; spanning midnight can never fit.
	if iv.start.Year() != iv.end.Year() || iv.start.YearDay() != iv.end.YearDay() {
		return false
	}
	if iv.start.Hour() < bh.openHour || iv.start.Hour() > bh.closeHour {
		return false
	}
	end := iv.end
	if end.Hour() < bh.openHour {
		return false
	}
	if end.Hour() > bh.closeHour {
		return false
	}
	// Ending exactly at close is fine; any spill past it is not.
	if end.Hour() == bh.closeHour && (end.Minute() != 0 || end.Second() != 0 || end.Nanosecond() != 0) {
		return false
	}
	return true
}

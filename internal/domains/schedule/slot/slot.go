// Package slot implements the slot grid and overlap arithmetic used by the
// availability calculator and the booking lifecycle. All times are minutes
// since midnight, all intervals half-open [start, end).
package slot

import (
	"fmt"
	"time"

	"garage/shared/constant"
)

// Interval is a half-open time-of-day range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds an interval from a start and a duration in minutes.
func NewInterval(start, durationMinutes int) Interval {
	return Interval{Start: start, End: start + durationMinutes}
}

// FromTimes converts a wall-clock pair into a time-of-day interval.
func FromTimes(start, end time.Time) Interval {
	return Interval{Start: MinuteOfDay(start), End: MinuteOfDay(end)}
}

// MinuteOfDay returns the minutes elapsed since midnight for t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*constant.MinutesPerHour + t.Minute()
}

// ParseClock parses an "HH:MM" string into minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(constant.TimeOfDayFormat, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}

	return t.Hour()*constant.MinutesPerHour + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour)
}

// Grid generates candidate start times open + k*granularity for k = 0,1,2,...
// while the start itself is before closing. Whether a service of a given
// duration actually fits before closing is the caller's concern, see Fits.
func Grid(open, closing, granularityMinutes int) []int {
	if granularityMinutes <= 0 || open >= closing {
		return nil
	}

	starts := []int{}
	for start := open; start < closing; start += granularityMinutes {
		starts = append(starts, start)
	}

	return starts
}

// Fits reports whether a booking starting at start with the given duration
// ends at or before closing.
func Fits(start, durationMinutes, closing int) bool {
	return start+durationMinutes <= closing
}

// Overlaps reports whether the candidate interval intersects the existing
// booking once the existing interval is expanded by buffer minutes on both
// ends. The buffer is applied to the existing booking only; candidates are
// evaluated raw against already-buffered bookings. Total over all well-formed
// inputs, including zero-length and adjacent intervals.
func Overlaps(candidate, existing Interval, bufferMinutes int) bool {
	return !(candidate.End <= existing.Start-bufferMinutes || candidate.Start >= existing.End+bufferMinutes)
}

// ConflictsAny reports whether the candidate collides with any of the
// existing intervals under the buffered overlap rule.
func ConflictsAny(candidate Interval, existing []Interval, bufferMinutes int) bool {
	for _, busy := range existing {
		if Overlaps(candidate, busy, bufferMinutes) {
			return true
		}
	}

	return false
}

// Package scheduler implements the booking-slot availability and admission
// engine. All functions are pure: they operate on data already fetched by the
// caller and perform no I/O.
package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// DateLayout is the calendar-day format used on booking records.
const DateLayout = "2006-01-02"

// TimeRange is a contiguous span within one calendar day, bounded by two
// HH:MM wall-clock times. It never crosses midnight.
type TimeRange struct {
	Start string `json:"startTime"`
	End   string `json:"endTime"`
}

// ToMinutes parses an HH:MM time of day into its minute offset from midnight.
func ToMinutes(t string) (int, error) {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0, &FormatError{Value: t}
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, &FormatError{Value: t}
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, &FormatError{Value: t}
	}

	return hour*60 + minute, nil
}

// FromMinutes formats a minute offset from midnight as a zero-padded HH:MM
// string. The offset must lie in [0, 1439].
func FromMinutes(m int) (string, error) {
	if m < 0 || m > 1439 {
		return "", fmt.Errorf("minute offset %d out of range [0, 1439]", m)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// Validate checks both endpoints parse and that the range runs forward.
func (r TimeRange) Validate() error {
	start, err := ToMinutes(r.Start)
	if err != nil {
		return err
	}
	end, err := ToMinutes(r.End)
	if err != nil {
		return err
	}
	if start >= end {
		return &ValidationError{Reason: fmt.Sprintf("time range %s-%s does not run forward", r.Start, r.End)}
	}
	return nil
}

// Minutes returns both endpoints as minute offsets.
func (r TimeRange) Minutes() (start, end int, err error) {
	start, err = ToMinutes(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err = ToMinutes(r.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// DurationHours returns the span length in fractional hours, e.g. 0.5 for a
// half-hour range.
func (r TimeRange) DurationHours() (float64, error) {
	start, end, err := r.Minutes()
	if err != nil {
		return 0, err
	}
	return float64(end-start) / 60, nil
}

// Overlaps reports whether two ranges share any time. Ranges are half-open:
// a range ending exactly when the other starts does not overlap, so
// back-to-back bookings are permitted.
func Overlaps(a, b TimeRange) (bool, error) {
	aStart, aEnd, err := a.Minutes()
	if err != nil {
		return false, err
	}
	bStart, bEnd, err := b.Minutes()
	if err != nil {
		return false, err
	}
	return overlaps(aStart, aEnd, bStart, bEnd), nil
}

func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

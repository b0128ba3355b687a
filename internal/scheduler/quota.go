package scheduler

import "time"

// MonthlyHourCap is the fixed maximum of pending plus approved booked time a
// single user may accumulate within one calendar month.
const MonthlyHourCap = 8.0

// MonthlyHours sums the user's already-booked hours in the calendar month
// containing candidateDate. Only bookings that still block count; rejected
// and completed ones are ignored. Durations are fractional hours of each
// booking's stored envelope.
func MonthlyHours(candidateDate string, bookings []BookingWindow) (float64, error) {
	candidate, err := time.Parse(DateLayout, candidateDate)
	if err != nil {
		return 0, &ValidationError{Reason: "invalid date " + candidateDate}
	}

	var total float64
	for _, b := range bookings {
		if !b.Status.Blocks() {
			continue
		}
		day, err := time.Parse(DateLayout, b.Date)
		if err != nil {
			return 0, &ValidationError{Reason: "invalid booking date " + b.Date}
		}
		if day.Year() != candidate.Year() || day.Month() != candidate.Month() {
			continue
		}
		hours, err := b.Range.DurationHours()
		if err != nil {
			return 0, err
		}
		total += hours
	}

	return total, nil
}

// WouldExceedCap reports whether admitting a booking of candidateHours on top
// of the hours already booked this month would break the cap. Landing exactly
// on the cap is allowed.
func WouldExceedCap(currentHours, candidateHours, cap float64) bool {
	return currentHours+candidateHours > cap
}

package scheduler

import "fmt"

// FormatError reports a time-of-day string that does not parse as HH:MM.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time of day %q, expected HH:MM", e.Value)
}

// ValidationError reports a booking request that is malformed before any
// availability or quota check runs.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid booking request: " + e.Reason
}

// ConflictError reports that the requested envelope overlaps an existing
// pending or approved booking. It deliberately carries no reference to the
// conflicting booking.
type ConflictError struct{}

func (e *ConflictError) Error() string {
	return "room is already booked for the selected time"
}

// QuotaExceededError reports that admitting the booking would push the user
// past the monthly hour cap.
type QuotaExceededError struct {
	CurrentHours   float64
	AttemptedHours float64
	Cap            float64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly booking quota exceeded: %.1f of %.1f hours used, request would total %.1f",
		e.CurrentHours, e.Cap, e.AttemptedHours)
}

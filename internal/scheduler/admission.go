package scheduler

import (
	"sort"
	"strings"
	"time"
)

// Role is the booking role of an authenticated user. Admins manage bookings
// but do not submit them through admission.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleIncubated Role = "incubated"
	RoleExternal  Role = "external"
)

// User is the read-only identity input to admission.
type User struct {
	ID   string
	Role Role
}

// Room is the read-only room input to admission. RequiresApproval is the
// explicit sensitivity flag; NeedsApproval also honors the legacy name-based
// policy for records created before the flag existed.
type Room struct {
	ID               string
	Name             string
	Capacity         int
	RequiresApproval bool
}

// RequiresApprovalByName is the legacy policy: rooms whose names mention an
// auditorium or conference space need an admin to sign off.
func RequiresApprovalByName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "auditorium") || strings.Contains(lower, "conference")
}

// NeedsApproval reports whether bookings for this room start out pending even
// for incubated users.
func (r Room) NeedsApproval() bool {
	return r.RequiresApproval || RequiresApprovalByName(r.Name)
}

// Request carries one booking attempt into admission.
type Request struct {
	User    User
	Room    Room
	Date    string // DateLayout
	Slots   []TimeRange
	Purpose string
}

// Result is the admitted booking, ready for the caller to persist. Start and
// End are the envelope of the requested slots; Slots keeps the original
// selection, sorted, for audit and display.
type Result struct {
	RoomID        string
	UserID        string
	Date          string
	Start         string
	End           string
	Slots         []TimeRange
	Purpose       string
	Status        Status
	DurationHours float64
}

// Admit validates a booking request and decides whether it can be committed.
// Checks run in a fixed order and the first failure aborts the attempt:
// input shape, quota, then conflict. On success the initial status is derived
// from the user's role and the room's sensitivity.
//
// roomBookings are the existing bookings for the same room and date;
// userMonthBookings are the user's bookings anywhere in the candidate month.
// now supplies the wall clock so the past-date check stays testable.
func Admit(req Request, roomBookings, userMonthBookings []BookingWindow, now time.Time) (*Result, error) {
	if len(req.Slots) == 0 {
		return nil, &ValidationError{Reason: "at least one time slot is required"}
	}

	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid date " + req.Date}
	}
	today, _ := time.Parse(DateLayout, now.Format(DateLayout))
	if date.Before(today) {
		return nil, &ValidationError{Reason: "cannot book a past date"}
	}

	for _, slot := range req.Slots {
		if err := slot.Validate(); err != nil {
			return nil, err
		}
	}

	slots := make([]TimeRange, len(req.Slots))
	copy(slots, req.Slots)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })

	envelope, err := Envelope(slots)
	if err != nil {
		return nil, err
	}

	// Duration, conflict, and quota all work on the envelope, so a scattered
	// selection is charged and blocked from its earliest start to its latest
	// end, gaps included.
	duration, err := envelope.DurationHours()
	if err != nil {
		return nil, err
	}

	current, err := MonthlyHours(req.Date, userMonthBookings)
	if err != nil {
		return nil, err
	}
	if WouldExceedCap(current, duration, MonthlyHourCap) {
		return nil, &QuotaExceededError{
			CurrentHours:   current,
			AttemptedHours: current + duration,
			Cap:            MonthlyHourCap,
		}
	}

	availability, err := ComputeAvailability(slots, roomBookings)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		return nil, &ConflictError{}
	}

	status := StatusPending
	if req.User.Role == RoleIncubated && !req.Room.NeedsApproval() {
		status = StatusApproved
	}

	return &Result{
		RoomID:        req.Room.ID,
		UserID:        req.User.ID,
		Date:          req.Date,
		Start:         envelope.Start,
		End:           envelope.End,
		Slots:         slots,
		Purpose:       strings.TrimSpace(req.Purpose),
		Status:        status,
		DurationHours: duration,
	}, nil
}

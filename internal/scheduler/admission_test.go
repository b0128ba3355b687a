package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admissionNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func admissionRequest(role Role, room Room, slots ...TimeRange) Request {
	return Request{
		User:    User{ID: "user-1", Role: role},
		Room:    room,
		Date:    "2026-09-10",
		Slots:   slots,
		Purpose: "  sprint planning  ",
	}
}

func TestAdmitSuccess(t *testing.T) {
	room := Room{ID: "room-1", Name: "Innovation Lab", Capacity: 8}
	req := admissionRequest(RoleIncubated, room,
		TimeRange{Start: "10:30", End: "11:00"},
		TimeRange{Start: "09:00", End: "09:30"},
	)

	result, err := Admit(req, nil, nil, admissionNow)
	require.NoError(t, err)

	assert.Equal(t, "room-1", result.RoomID)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "2026-09-10", result.Date)

	// Envelope spans earliest start to latest end, the gap included.
	assert.Equal(t, "09:00", result.Start)
	assert.Equal(t, "11:00", result.End)
	assert.Equal(t, 2.0, result.DurationHours)

	// Original selection survives, sorted.
	require.Len(t, result.Slots, 2)
	assert.Equal(t, "09:00", result.Slots[0].Start)
	assert.Equal(t, "10:30", result.Slots[1].Start)

	assert.Equal(t, "sprint planning", result.Purpose)
	assert.Equal(t, StatusApproved, result.Status)
}

func TestAdmitInitialStatus(t *testing.T) {
	lab := Room{ID: "room-1", Name: "Innovation Lab"}
	auditorium := Room{ID: "room-2", Name: "Main Auditorium"}
	conference := Room{ID: "room-3", Name: "Conference Room B"}
	flagged := Room{ID: "room-4", Name: "Quiet Corner", RequiresApproval: true}

	testCases := []struct {
		name     string
		role     Role
		room     Room
		expected Status
	}{
		{name: "incubated user in plain room auto-approves", role: RoleIncubated, room: lab, expected: StatusApproved},
		{name: "incubated user in auditorium stays pending", role: RoleIncubated, room: auditorium, expected: StatusPending},
		{name: "incubated user in conference room stays pending", role: RoleIncubated, room: conference, expected: StatusPending},
		{name: "incubated user in explicitly flagged room stays pending", role: RoleIncubated, room: flagged, expected: StatusPending},
		{name: "external user in plain room stays pending", role: RoleExternal, room: lab, expected: StatusPending},
		{name: "external user in auditorium stays pending", role: RoleExternal, room: auditorium, expected: StatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := admissionRequest(tc.role, tc.room, TimeRange{Start: "09:00", End: "09:30"})
			result, err := Admit(req, nil, nil, admissionNow)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Status)
		})
	}
}

func TestAdmitValidation(t *testing.T) {
	room := Room{ID: "room-1", Name: "Innovation Lab"}

	t.Run("empty slot list", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room)
		_, err := Admit(req, nil, nil, admissionNow)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("past date", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "09:30"})
		req.Date = "2026-08-31"
		_, err := Admit(req, nil, nil, admissionNow)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("same day is allowed", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "09:30"})
		req.Date = "2026-09-01"
		_, err := Admit(req, nil, nil, admissionNow)
		assert.NoError(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "09:30"})
		req.Date = "next tuesday"
		_, err := Admit(req, nil, nil, admissionNow)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("malformed slot", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "9am", End: "10am"})
		_, err := Admit(req, nil, nil, admissionNow)
		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	})
}

func TestAdmitQuota(t *testing.T) {
	room := Room{ID: "room-1", Name: "Innovation Lab"}

	monthBookings := func(hours float64) []BookingWindow {
		end, _ := FromMinutes(540 + int(hours*60))
		return []BookingWindow{
			{Date: "2026-09-05", Range: TimeRange{Start: "09:00", End: end}, Status: StatusApproved},
		}
	}

	t.Run("landing exactly on the cap succeeds", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "09:30"})
		result, err := Admit(req, nil, monthBookings(7.5), admissionNow)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, result.Status)
	})

	t.Run("going over the cap fails with totals attached", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "10:00"})
		_, err := Admit(req, nil, monthBookings(7.5), admissionNow)

		var quotaErr *QuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, 7.5, quotaErr.CurrentHours)
		assert.Equal(t, 8.5, quotaErr.AttemptedHours)
		assert.Equal(t, MonthlyHourCap, quotaErr.Cap)
	})

	t.Run("quota is charged on the envelope, not the slot sum", func(t *testing.T) {
		// Two half-hour slots with a gap: 1.5 h of envelope on top of 7.0.
		req := admissionRequest(RoleIncubated, room,
			TimeRange{Start: "09:00", End: "09:30"},
			TimeRange{Start: "10:00", End: "10:30"},
		)
		_, err := Admit(req, nil, monthBookings(7), admissionNow)
		var quotaErr *QuotaExceededError
		assert.ErrorAs(t, err, &quotaErr)
	})
}

func TestAdmitConflict(t *testing.T) {
	room := Room{ID: "room-1", Name: "Innovation Lab"}
	existing := []BookingWindow{
		{ID: "b1", Date: "2026-09-10", Range: TimeRange{Start: "09:00", End: "10:00"}, Status: StatusApproved},
	}

	t.Run("overlapping request is rejected without detail", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:30", End: "10:30"})
		_, err := Admit(req, existing, nil, admissionNow)

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.NotContains(t, err.Error(), "b1")
	})

	t.Run("adjacent request succeeds", func(t *testing.T) {
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "10:00", End: "11:00"})
		_, err := Admit(req, existing, nil, admissionNow)
		assert.NoError(t, err)
	})

	t.Run("rejected booking does not block", func(t *testing.T) {
		rejected := []BookingWindow{
			{ID: "b2", Date: "2026-09-10", Range: TimeRange{Start: "09:00", End: "10:00"}, Status: StatusRejected},
		}
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "10:00"})
		_, err := Admit(req, rejected, nil, admissionNow)
		assert.NoError(t, err)
	})

	t.Run("request inside the gap of an envelope booking is rejected", func(t *testing.T) {
		// A prior booking stored as the 09:00-11:00 envelope of a scattered
		// selection blocks the gap the user never asked for.
		envelope := []BookingWindow{
			{ID: "b3", Date: "2026-09-10", Range: TimeRange{Start: "09:00", End: "11:00"}, Status: StatusApproved},
		}
		req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:45", End: "10:15"})
		_, err := Admit(req, envelope, nil, admissionNow)
		var conflictErr *ConflictError
		assert.ErrorAs(t, err, &conflictErr)
	})
}

func TestAdmitCheckOrder(t *testing.T) {
	// Quota runs before conflict: a request that would fail both reports the
	// quota error.
	room := Room{ID: "room-1", Name: "Innovation Lab"}
	existing := []BookingWindow{
		{ID: "b1", Date: "2026-09-10", Range: TimeRange{Start: "09:00", End: "18:00"}, Status: StatusApproved},
	}
	month := []BookingWindow{
		{Date: "2026-09-05", Range: TimeRange{Start: "09:00", End: "17:00"}, Status: StatusApproved},
	}

	req := admissionRequest(RoleIncubated, room, TimeRange{Start: "09:00", End: "10:00"})
	_, err := Admit(req, existing, month, admissionNow)

	var quotaErr *QuotaExceededError
	assert.ErrorAs(t, err, &quotaErr)
}

func TestRequiresApprovalByName(t *testing.T) {
	assert.True(t, RequiresApprovalByName("Main Auditorium"))
	assert.True(t, RequiresApprovalByName("conference room b"))
	assert.True(t, RequiresApprovalByName("GRAND CONFERENCE HALL"))
	assert.False(t, RequiresApprovalByName("Innovation Lab"))
	assert.False(t, RequiresApprovalByName(""))
}

package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	testCases := []struct {
		name      string
		slots     []TimeRange
		expected  TimeRange
		expectErr bool
	}{
		{
			name:     "single slot",
			slots:    []TimeRange{{Start: "09:00", End: "09:30"}},
			expected: TimeRange{Start: "09:00", End: "09:30"},
		},
		{
			name: "contiguous slots",
			slots: []TimeRange{
				{Start: "09:00", End: "09:30"},
				{Start: "09:30", End: "10:00"},
			},
			expected: TimeRange{Start: "09:00", End: "10:00"},
		},
		{
			name: "non-contiguous slots swallow the gap",
			slots: []TimeRange{
				{Start: "09:00", End: "09:30"},
				{Start: "10:30", End: "11:00"},
			},
			expected: TimeRange{Start: "09:00", End: "11:00"},
		},
		{
			name: "unsorted input",
			slots: []TimeRange{
				{Start: "16:00", End: "16:30"},
				{Start: "09:00", End: "09:30"},
			},
			expected: TimeRange{Start: "09:00", End: "16:30"},
		},
		{
			name:      "empty selection",
			slots:     nil,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Envelope(tc.slots)
			if tc.expectErr {
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestComputeAvailability(t *testing.T) {
	existing := []BookingWindow{
		{ID: "b1", Date: "2026-09-10", Range: TimeRange{Start: "10:00", End: "11:00"}, Status: StatusApproved},
		{ID: "b2", Date: "2026-09-10", Range: TimeRange{Start: "14:00", End: "15:00"}, Status: StatusPending},
		{ID: "b3", Date: "2026-09-10", Range: TimeRange{Start: "09:00", End: "12:00"}, Status: StatusRejected},
		{ID: "b4", Date: "2026-09-10", Range: TimeRange{Start: "16:00", End: "17:00"}, Status: StatusCompleted},
	}

	testCases := []struct {
		name          string
		requested     []TimeRange
		available     bool
		conflictingID string
	}{
		{
			name:      "free range",
			requested: []TimeRange{{Start: "12:00", End: "12:30"}},
			available: true,
		},
		{
			name:          "overlap with approved booking",
			requested:     []TimeRange{{Start: "10:30", End: "11:30"}},
			available:     false,
			conflictingID: "b1",
		},
		{
			name:          "pending bookings block too",
			requested:     []TimeRange{{Start: "14:30", End: "15:30"}},
			available:     false,
			conflictingID: "b2",
		},
		{
			name:      "rejected and completed bookings never block",
			requested: []TimeRange{{Start: "09:00", End: "09:30"}},
			available: true,
		},
		{
			name:      "back-to-back is allowed",
			requested: []TimeRange{{Start: "11:00", End: "11:30"}},
			available: true,
		},
		{
			name: "envelope of scattered slots hits booking inside the gap",
			requested: []TimeRange{
				{Start: "09:30", End: "10:00"},
				{Start: "11:30", End: "12:00"},
			},
			available:     false,
			conflictingID: "b1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ComputeAvailability(tc.requested, existing)
			require.NoError(t, err)
			assert.Equal(t, tc.available, result.Available)
			assert.Equal(t, tc.conflictingID, result.ConflictingID)
		})
	}
}

func TestComputeAvailabilityEmptyRequest(t *testing.T) {
	_, err := ComputeAvailability(nil, nil)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSlotAvailability(t *testing.T) {
	existing := []BookingWindow{
		// Fully covers 10:00-10:30 and 10:30-11:00.
		{ID: "b1", Range: TimeRange{Start: "10:00", End: "11:00"}, Status: StatusApproved},
		// Covers only half of 13:00-13:30, so the slot stays listed as free.
		{ID: "b2", Range: TimeRange{Start: "13:15", End: "14:15"}, Status: StatusPending},
		// Rejected, never marks anything.
		{ID: "b3", Range: TimeRange{Start: "09:00", End: "18:00"}, Status: StatusRejected},
	}

	statuses, err := SlotAvailability(existing)
	require.NoError(t, err)
	require.Len(t, statuses, 18)

	byStart := make(map[string]SlotStatus, len(statuses))
	for _, s := range statuses {
		byStart[s.Slot.Start] = s
	}

	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.True(t, byStart["09:00"].Available)
	assert.True(t, byStart["11:00"].Available)

	// Partial coverage: containment rule leaves both half-covered slots free,
	// only 13:30-14:00 is fully inside b2.
	assert.True(t, byStart["13:00"].Available)
	assert.False(t, byStart["13:30"].Available)
	assert.True(t, byStart["14:00"].Available)
}

func TestSlotAvailabilityNoBookings(t *testing.T) {
	statuses, err := SlotAvailability(nil)
	require.NoError(t, err)
	require.Len(t, statuses, 18)
	for _, s := range statuses {
		assert.True(t, s.Available)
	}
}

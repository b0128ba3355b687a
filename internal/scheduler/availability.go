package scheduler

// Status is the lifecycle state of a booking. Only pending and approved
// bookings block a room; rejected and completed ones never do.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Blocks reports whether a booking in this state occupies its time range for
// conflict and quota purposes.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusApproved
}

// BookingWindow is the slice of a stored booking the engine needs: when it is
// and whether it still counts. Callers map their storage records into this.
type BookingWindow struct {
	ID     string
	Date   string // DateLayout
	Range  TimeRange
	Status Status
}

// AvailabilityResult reports whether a room is free for a requested envelope.
// ConflictingID identifies the first blocking booking found; callers decide
// whether to surface it.
type AvailabilityResult struct {
	Available     bool
	ConflictingID string
}

// Envelope collapses a set of requested slots into one combined range from
// the earliest start to the latest end. Gaps between non-contiguous slots are
// swallowed on purpose: the reference behavior treats a scattered selection
// as one continuous booking, and both conflict and quota checks work on the
// envelope.
func Envelope(requested []TimeRange) (TimeRange, error) {
	if len(requested) == 0 {
		return TimeRange{}, &ValidationError{Reason: "at least one time slot is required"}
	}

	var envStart, envEnd int
	for i, r := range requested {
		start, end, err := r.Minutes()
		if err != nil {
			return TimeRange{}, err
		}
		if i == 0 || start < envStart {
			envStart = start
		}
		if i == 0 || end > envEnd {
			envEnd = end
		}
	}

	start, _ := FromMinutes(envStart)
	end, _ := FromMinutes(envEnd)
	return TimeRange{Start: start, End: end}, nil
}

// ComputeAvailability decides whether the requested slots can be admitted
// against the room's existing bookings. The requested slots are reduced to
// their envelope and tested with the half-open overlap rule against every
// booking that still blocks.
func ComputeAvailability(requested []TimeRange, existing []BookingWindow) (AvailabilityResult, error) {
	envelope, err := Envelope(requested)
	if err != nil {
		return AvailabilityResult{}, err
	}

	for _, b := range existing {
		if !b.Status.Blocks() {
			continue
		}
		hit, err := Overlaps(envelope, b.Range)
		if err != nil {
			return AvailabilityResult{}, err
		}
		if hit {
			return AvailabilityResult{Available: false, ConflictingID: b.ID}, nil
		}
	}

	return AvailabilityResult{Available: true}, nil
}

// SlotStatus marks one grid slot as takeable or not.
type SlotStatus struct {
	Slot      TimeRange
	Available bool
}

// SlotAvailability produces the per-slot read view of a room's day: each grid
// slot is marked booked only when it is entirely contained within a blocking
// booking's span. This is a containment test, not the overlap test the write
// path uses; a booking that partially covers a slot leaves that slot listed
// as available.
func SlotAvailability(existing []BookingWindow) ([]SlotStatus, error) {
	slots := DailySlots()
	statuses := make([]SlotStatus, len(slots))

	for i, slot := range slots {
		slotStart, slotEnd, _ := slot.Minutes()

		booked := false
		for _, b := range existing {
			if !b.Status.Blocks() {
				continue
			}
			bStart, bEnd, err := b.Range.Minutes()
			if err != nil {
				return nil, err
			}
			if slotStart >= bStart && slotEnd <= bEnd {
				booked = true
				break
			}
		}

		statuses[i] = SlotStatus{Slot: slot, Available: !booked}
	}

	return statuses, nil
}

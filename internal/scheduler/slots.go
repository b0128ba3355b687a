package scheduler

// The bookable business day runs 09:00 to 18:00 in half-hour increments.
const (
	dayStartMinutes = 9 * 60
	dayEndMinutes   = 18 * 60
	slotMinutes     = 30
)

// DailySlots returns the fixed catalog of bookable half-hour slots for a
// business day, in ascending order. The grid is the same for every room and
// every date, so the result is identical on every call.
func DailySlots() []TimeRange {
	slots := make([]TimeRange, 0, (dayEndMinutes-dayStartMinutes)/slotMinutes)
	for m := dayStartMinutes; m < dayEndMinutes; m += slotMinutes {
		start, _ := FromMinutes(m)
		end, _ := FromMinutes(m + slotMinutes)
		slots = append(slots, TimeRange{Start: start, End: end})
	}
	return slots
}

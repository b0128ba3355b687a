package entity

import (
	"github.com/google/uuid"

	"room-booking/internal/scheduler"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking stores one admitted room booking. StartTime and EndTime are the
// combined envelope of the requested slots; TimeSlots keeps the original
// sorted selection for audit and display.
type Booking struct {
	Base
	RoomID    uuid.UUID             `db:"room_id"`
	UserID    uuid.UUID             `db:"user_id"`
	Date      string                `db:"date"` // scheduler.DateLayout
	StartTime string                `db:"start_time"`
	EndTime   string                `db:"end_time"`
	TimeSlots []scheduler.TimeRange `db:"time_slots"`
	Purpose   string                `db:"purpose"`
	Status    BookingStatus         `db:"status"`
}

// Window maps the booking into the scheduler's input shape.
func (b *Booking) Window() scheduler.BookingWindow {
	return scheduler.BookingWindow{
		ID:     b.ID.String(),
		Date:   b.Date,
		Range:  scheduler.TimeRange{Start: b.StartTime, End: b.EndTime},
		Status: scheduler.Status(b.Status),
	}
}

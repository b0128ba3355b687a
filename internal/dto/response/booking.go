package response

import (
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/scheduler"
)

type BookingTimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	RoomID        string               `json:"roomId"`
	RoomName      string               `json:"roomName,omitempty"`
	UserID        string               `json:"userId"`
	UserName      string               `json:"userName,omitempty"`
	Date          string               `json:"date"`
	StartTime     string               `json:"startTime"`
	EndTime       string               `json:"endTime"`
	TimeSlots     []BookingTimeSlot    `json:"timeSlots"`
	Purpose       string               `json:"purpose"`
	Status        entity.BookingStatus `json:"status"`
	DurationHours float64              `json:"durationHours"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// QuotaExceededResponse carries the totals the UI needs for a precise
// quota message.
type QuotaExceededResponse struct {
	CurrentHours   float64 `json:"currentHours"`
	AttemptedHours float64 `json:"attemptedHours"`
	CapHours       float64 `json:"capHours"`
}

// SweepResponse reports how many approved bookings the completed-status
// sweep promoted.
type SweepResponse struct {
	UpdatedCount int64  `json:"updatedCount"`
	CurrentDate  string `json:"currentDate"`
	CurrentTime  string `json:"currentTime"`
}

func BookingToResponse(booking *entity.Booking, room *entity.Room, user *entity.User) BookingResponse {
	slots := make([]BookingTimeSlot, len(booking.TimeSlots))
	for i, s := range booking.TimeSlots {
		slots[i] = BookingTimeSlot{StartTime: s.Start, EndTime: s.End}
	}

	resp := BookingResponse{
		ID:        booking.ID.String(),
		RoomID:    booking.RoomID.String(),
		UserID:    booking.UserID.String(),
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		TimeSlots: slots,
		Purpose:   booking.Purpose,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
	}
	if room != nil {
		resp.RoomName = room.Name
	}
	if user != nil {
		resp.UserName = user.Name
	}
	if hours, err := (scheduler.TimeRange{Start: booking.StartTime, End: booking.EndTime}).DurationHours(); err == nil {
		resp.DurationHours = hours
	}

	return resp
}

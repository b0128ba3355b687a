package request

// TimeSlot is one requested slot in wire shape, HH:MM endpoints.
type TimeSlot struct {
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

type CreateBookingRequest struct {
	RoomID    string     `json:"roomId" validate:"required,uuid4"`
	Date      string     `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlots []TimeSlot `json:"timeSlots" validate:"required,min=1,dive"`
	Purpose   string     `json:"purpose" validate:"max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

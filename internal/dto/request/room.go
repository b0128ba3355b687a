package request

type CreateRoomRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required"`
	Capacity    int      `json:"capacity" validate:"required,min=1"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images" validate:"dive,url"`
	// When nil the flag is derived from the room name.
	RequiresApproval *bool `json:"requiresApproval"`
}

type UpdateRoomRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=100"`
	Description      string   `json:"description" validate:"required"`
	Capacity         int      `json:"capacity" validate:"required,min=1"`
	Amenities        []string `json:"amenities"`
	Images           []string `json:"images" validate:"dive,url"`
	RequiresApproval *bool    `json:"requiresApproval"`
}

// TimeSlotsRequest asks for the per-slot availability view of one room day.
type TimeSlotsRequest struct {
	RoomID string `json:"roomId" validate:"required,uuid4"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

// AvailableRoomsRequest asks which rooms are free for a requested slot
// selection on a date.
type AvailableRoomsRequest struct {
	Date      string     `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlots []TimeSlot `json:"timeSlots" validate:"required,min=1,dive"`
}

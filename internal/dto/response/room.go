package response

import (
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/scheduler"
)

type RoomResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Capacity         int       `json:"capacity"`
	Amenities        []string  `json:"amenities"`
	Images           []string  `json:"images"`
	RequiresApproval bool      `json:"requiresApproval"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RoomAvailabilityResponse is a room plus whether it is free for the
// requested slot selection.
type RoomAvailabilityResponse struct {
	RoomResponse
	IsAvailable bool `json:"isAvailable"`
}

// TimeSlotStatusResponse is one grid slot of the per-slot day view.
type TimeSlotStatusResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := room.Images
	if images == nil {
		images = []string{}
	}

	return RoomResponse{
		ID:               room.ID.String(),
		Name:             room.Name,
		Description:      room.Description,
		Capacity:         room.Capacity,
		Amenities:        amenities,
		Images:           images,
		RequiresApproval: room.RequiresApproval,
		CreatedAt:        room.CreatedAt,
	}
}

func SlotStatusesToResponse(statuses []scheduler.SlotStatus) []TimeSlotStatusResponse {
	out := make([]TimeSlotStatusResponse, len(statuses))
	for i, s := range statuses {
		out[i] = TimeSlotStatusResponse{
			StartTime:   s.Slot.Start,
			EndTime:     s.Slot.End,
			IsAvailable: s.Available,
		}
	}
	return out
}

package entity

// Room is the bookable inventory unit. RequiresApproval marks sensitive rooms
// whose bookings always start out pending; it is derived from the room name
// at creation time unless set explicitly.
type Room struct {
	Base
	Name             string   `db:"name"`
	Description      string   `db:"description"`
	Capacity         int      `db:"capacity"`
	Amenities        []string `db:"amenities"`
	Images           []string `db:"images"`
	RequiresApproval bool     `db:"requires_approval"`
}

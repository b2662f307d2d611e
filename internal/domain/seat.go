package domain

// Seat is a bookable desk on the floor plan. A seat without an owner
// name has no recurring occupant and is only ever taken via bookings.
type Seat struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	OwnerName string `json:"owner_name,omitempty"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

func (s Seat) HasOwner() bool {
	return s.OwnerName != ""
}

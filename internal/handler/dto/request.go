package dto

type ReportRequest struct {
	Owner     string          `json:"owner" binding:"required"`
	FixedDays []int           `json:"fixed_days"`
	Overrides map[string]bool `json:"overrides"`
}

type CommitRequest struct {
	Name     string            `json:"name" binding:"required"`
	Bookings map[string]string `json:"bookings" binding:"required"`
}

type InstantBookRequest struct {
	Date   string `json:"date" binding:"required"`
	SeatID string `json:"seat_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type FreeSeatRequest struct {
	Date string `json:"date" binding:"required"`
}

type ToggleOwnerRequest struct {
	Owner string `json:"owner" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type BeginRelocationRequest struct {
	DisplacedKey  string `json:"displaced_key" binding:"required"`
	DisplacedName string `json:"displaced_name" binding:"required"`
	Date          string `json:"date" binding:"required"`
	SeatID        string `json:"seat_id" binding:"required"`
	OwnerName     string `json:"owner_name" binding:"required"`
}

type RelocationDestinationRequest struct {
	SeatID string `json:"seat_id" binding:"required"`
}

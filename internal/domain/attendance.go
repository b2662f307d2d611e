package domain

// AttendanceRecord is the resolved occupant of one seat on one date.
// It is derived on every snapshot or date change and never persisted.
type AttendanceRecord struct {
	SeatID          string `json:"seat_id"`
	Date            string `json:"date"`
	Key             string `json:"key"`
	Name            string `json:"name"`
	IsOriginalOwner bool   `json:"is_original_owner"`
	IsEphemeral     bool   `json:"is_ephemeral"`
}

// StagedBookings is a client session's uncommitted seat selection,
// date -> seat id. It lives only in the acting client until finalized
// and is invisible to every other session.
type StagedBookings map[string]string

// CommitConflict reports one staged booking that lost the race between
// staging and commit.
type CommitConflict struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	SeatLabel string `json:"seat_label"`
}

// RelocationRequest is the transient state between "owner toggled on
// but the seat is held" and the admin choosing a destination seat.
type RelocationRequest struct {
	DisplacedKey  string `json:"displaced_key"`
	DisplacedName string `json:"displaced_name"`
	Date          string `json:"date"`
	SeatID        string `json:"seat_id"`
	OwnerName     string `json:"owner_name"`
}

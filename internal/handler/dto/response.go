package dto

import (
	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/week"
)

type SeatResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	OwnerName string `json:"owner_name,omitempty"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

type WeekResponse struct {
	CurrentWeek       []string       `json:"current_week"`
	NextWeek          []string       `json:"next_week"`
	NextWeekLocked    bool           `json:"next_week_locked"`
	CurrentWeekActive bool           `json:"current_week_active"`
	CountdownToLock   week.Countdown `json:"countdown_to_lock"`
	Today             string         `json:"today"`
}

type AttendanceResponse struct {
	SeatID          string `json:"seat_id"`
	Date            string `json:"date"`
	Key             string `json:"key"`
	Name            string `json:"name"`
	IsOriginalOwner bool   `json:"is_original_owner"`
	IsEphemeral     bool   `json:"is_ephemeral"`
}

type CommitConflictResponse struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	SeatLabel string `json:"seat_label"`
}

type CommitResponse struct {
	Conflicts []CommitConflictResponse `json:"conflicts"`
}

type InstantBookResponse struct {
	Key    string `json:"key"`
	Date   string `json:"date"`
	SeatID string `json:"seat_id"`
}

type ToggleOwnerResponse struct {
	Owner  string `json:"owner"`
	Date   string `json:"date"`
	Coming bool   `json:"coming"`
}

type RelocationResponse struct {
	DisplacedKey  string `json:"displaced_key"`
	DisplacedName string `json:"displaced_name"`
	Date          string `json:"date"`
	SeatID        string `json:"seat_id"`
	OwnerName     string `json:"owner_name"`
}

type ErrorResponse struct {
	Error      string              `json:"error"`
	Relocation *RelocationResponse `json:"relocation,omitempty"`
}

func ToSeatResponse(s domain.Seat) SeatResponse {
	return SeatResponse{
		ID:        s.ID,
		Label:     s.Label,
		OwnerName: s.OwnerName,
		X:         s.X,
		Y:         s.Y,
	}
}

func ToAttendanceResponse(r domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		SeatID:          r.SeatID,
		Date:            r.Date,
		Key:             r.Key,
		Name:            r.Name,
		IsOriginalOwner: r.IsOriginalOwner,
		IsEphemeral:     r.IsEphemeral,
	}
}

func ToCommitResponse(conflicts []domain.CommitConflict) CommitResponse {
	resp := CommitResponse{Conflicts: make([]CommitConflictResponse, 0, len(conflicts))}
	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, CommitConflictResponse{
			Date:      c.Date,
			Weekday:   c.Weekday,
			SeatLabel: c.SeatLabel,
		})
	}
	return resp
}

func ToRelocationResponse(r domain.RelocationRequest) RelocationResponse {
	return RelocationResponse{
		DisplacedKey:  r.DisplacedKey,
		DisplacedName: r.DisplacedName,
		Date:          r.Date,
		SeatID:        r.SeatID,
		OwnerName:     r.OwnerName,
	}
}

package service

import (
	"fmt"
	"time"

	"github.com/mobac1989/buildots-seating/internal/catalog"
	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/week"
)

// StagedView overlays the acting session's uncommitted bookings on a
// resolution pass. Other sessions never see these.
type StagedView struct {
	Key      string
	Name     string
	Bookings domain.StagedBookings
}

// Resolver derives seat occupancy from a preference snapshot. It is
// pure: no I/O, no mutation of inputs, and a deterministic result for
// any snapshot.
type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve computes the occupant of every seat for date. Precedence per
// seat, first match wins:
//
//  1. the acting session's staged booking,
//  2. any record's explicit booking for the seat/date,
//  3. the seat owner's override/fixed-day attendance.
//
// At most one record is produced per seat.
func (r *Resolver) Resolve(snap domain.Snapshot, date string, staged *StagedView) ([]domain.AttendanceRecord, error) {
	day, err := week.Weekday(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	var records []domain.AttendanceRecord
	for _, seat := range r.catalog.Seats() {
		if rec := resolveSeat(seat, snap, date, day, staged); rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// OccupantOf resolves a single seat. A nil record means the seat is
// free for date.
func (r *Resolver) OccupantOf(snap domain.Snapshot, date, seatID string, staged *StagedView) (*domain.AttendanceRecord, error) {
	seat, ok := r.catalog.ByID(seatID)
	if !ok {
		return nil, domain.ErrSeatNotFound
	}
	day, err := week.Weekday(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return resolveSeat(seat, snap, date, day, staged), nil
}

func resolveSeat(seat domain.Seat, snap domain.Snapshot, date string, day time.Weekday, staged *StagedView) *domain.AttendanceRecord {
	if staged != nil && staged.Bookings[date] == seat.ID {
		return &domain.AttendanceRecord{
			SeatID:          seat.ID,
			Date:            date,
			Key:             staged.Key,
			Name:            staged.Name,
			IsOriginalOwner: false,
			IsEphemeral:     true,
		}
	}

	// Two records racing for the same seat/date is a transient store
	// state; the smallest key wins so every client derives the same
	// occupant until the commit re-check untangles it.
	bookedKey := ""
	for key, rec := range snap {
		if rec.Bookings[date] == seat.ID {
			if bookedKey == "" || key < bookedKey {
				bookedKey = key
			}
		}
	}
	if bookedKey != "" {
		return &domain.AttendanceRecord{
			SeatID:          seat.ID,
			Date:            date,
			Key:             bookedKey,
			Name:            snap[bookedKey].Name,
			IsOriginalOwner: false,
			IsEphemeral:     domain.IsEphemeralKey(bookedKey),
		}
	}

	if seat.HasOwner() {
		if rec, ok := snap[seat.OwnerName]; ok && rec.IsComing(date, day) {
			return &domain.AttendanceRecord{
				SeatID:          seat.ID,
				Date:            date,
				Key:             seat.OwnerName,
				Name:            seat.OwnerName,
				IsOriginalOwner: true,
				IsEphemeral:     false,
			}
		}
	}

	return nil
}

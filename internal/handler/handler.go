package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/mobac1989/buildots-seating/internal/catalog"
	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/handler/dto"
	"github.com/mobac1989/buildots-seating/internal/service"
	"github.com/mobac1989/buildots-seating/internal/week"
)

// SnapshotSource exposes the hub's current snapshot and its update
// stream.
type SnapshotSource interface {
	Current() domain.Snapshot
	Subscribe() (<-chan domain.Snapshot, func())
}

type AttendanceSvc interface {
	Resolve(snap domain.Snapshot, date string, staged *service.StagedView) ([]domain.AttendanceRecord, error)
}

type BookingSvc interface {
	CommitStaged(ctx context.Context, actorKey, actorName string, staged domain.StagedBookings) ([]domain.CommitConflict, error)
	InstantBook(ctx context.Context, date, seatID, name string) (string, error)
	FreeSeat(ctx context.Context, date, seatID string) error
	ToggleOwnerAttendance(ctx context.Context, ownerName, date string) (bool, *domain.RelocationRequest, error)
	SaveOwnerReport(ctx context.Context, ownerName string, fixedDays []int, overrides map[string]bool) error
}

type RelocationSvc interface {
	Begin(ctx context.Context, req domain.RelocationRequest) error
	ChooseDestination(ctx context.Context, destSeatID string) error
	Cancel() error
	Pending() *domain.RelocationRequest
}

type Handler struct {
	catalog    *catalog.Catalog
	snapshots  SnapshotSource
	attendance AttendanceSvc
	booking    BookingSvc
	relocation RelocationSvc
	policy     week.Policy
	now        func() time.Time
}

func NewHandler(
	cat *catalog.Catalog,
	snapshots SnapshotSource,
	attendance AttendanceSvc,
	booking BookingSvc,
	relocation RelocationSvc,
	policy week.Policy,
	now func() time.Time,
) *Handler {
	if now == nil {
		now = policy.Now
	}
	return &Handler{
		catalog:    cat,
		snapshots:  snapshots,
		attendance: attendance,
		booking:    booking,
		relocation: relocation,
		policy:     policy,
		now:        now,
	}
}

// Seats

func (h *Handler) ListSeats(c *ginext.Context) {
	seats := h.catalog.Seats()
	resp := make([]dto.SeatResponse, 0, len(seats))
	for _, s := range seats {
		resp = append(resp, dto.ToSeatResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Week

func (h *Handler) GetWeek(c *ginext.Context) {
	now := h.now()
	c.JSON(http.StatusOK, dto.WeekResponse{
		CurrentWeek:       h.policy.CurrentWeekRange(now),
		NextWeek:          h.policy.NextWeekRange(now),
		NextWeekLocked:    h.policy.IsNextWeekLocked(now),
		CurrentWeekActive: h.policy.IsCurrentWeekActive(now),
		CountdownToLock:   h.policy.CountdownToLock(now),
		Today:             now.Format(week.DateFormat),
	})
}

// Attendance

func (h *Handler) GetAttendance(c *ginext.Context) {
	date := c.Query("date")
	if !week.ValidDate(date) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or missing date"})
		return
	}

	records, err := h.attendance.Resolve(h.snapshots.Current(), date, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToAttendanceResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Owner report

func (h *Handler) SaveReport(c *ginext.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if h.policy.IsNextWeekLocked(h.now()) {
		h.handleError(c, domain.ErrWeekLocked)
		return
	}

	if err := h.booking.SaveOwnerReport(c.Request.Context(), req.Owner, req.FixedDays, req.Overrides); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "saved"})
}

// Bookings

func (h *Handler) CommitBookings(c *ginext.Context) {
	var req dto.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	now := h.now()
	if h.policy.IsNextWeekLocked(now) {
		h.handleError(c, domain.ErrWeekLocked)
		return
	}
	nextWeek := h.policy.NextWeekRange(now)
	for date := range req.Bookings {
		if !containsDate(nextWeek, date) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "booking date outside next week"})
			return
		}
	}

	conflicts, err := h.booking.CommitStaged(c.Request.Context(), req.Name, req.Name, req.Bookings)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommitResponse(conflicts))
}

func (h *Handler) InstantBook(c *ginext.Context) {
	var req dto.InstantBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	now := h.now()
	if !h.policy.IsCurrentWeekActive(now) {
		h.handleError(c, domain.ErrWeekInactive)
		return
	}
	if !containsDate(h.policy.CurrentWeekRange(now), req.Date) || h.policy.IsPast(req.Date, now) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date outside the current week"})
		return
	}

	key, err := h.booking.InstantBook(c.Request.Context(), req.Date, req.SeatID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InstantBookResponse{
		Key:    key,
		Date:   req.Date,
		SeatID: req.SeatID,
	})
}

// Admin

func (h *Handler) AdminBook(c *ginext.Context) {
	var req dto.InstantBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	now := h.now()
	if !containsDate(h.policy.CurrentWeekRange(now), req.Date) &&
		!containsDate(h.policy.NextWeekRange(now), req.Date) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date outside the bookable weeks"})
		return
	}

	key, err := h.booking.InstantBook(c.Request.Context(), req.Date, req.SeatID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InstantBookResponse{
		Key:    key,
		Date:   req.Date,
		SeatID: req.SeatID,
	})
}

func (h *Handler) FreeSeat(c *ginext.Context) {
	seatID := c.Param("id")

	var req dto.FreeSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.booking.FreeSeat(c.Request.Context(), req.Date, seatID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "freed"})
}

func (h *Handler) ToggleOwner(c *ginext.Context) {
	var req dto.ToggleOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	coming, reloc, err := h.booking.ToggleOwnerAttendance(c.Request.Context(), req.Owner, req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerSeatHeld) && reloc != nil {
			r := dto.ToRelocationResponse(*reloc)
			c.Set("error", err.Error())
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error:      err.Error(),
				Relocation: &r,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleOwnerResponse{
		Owner:  req.Owner,
		Date:   req.Date,
		Coming: coming,
	})
}

func (h *Handler) BeginRelocation(c *ginext.Context) {
	var req dto.BeginRelocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.relocation.Begin(c.Request.Context(), domain.RelocationRequest{
		DisplacedKey:  req.DisplacedKey,
		DisplacedName: req.DisplacedName,
		Date:          req.Date,
		SeatID:        req.SeatID,
		OwnerName:     req.OwnerName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "pending"})
}

func (h *Handler) GetRelocation(c *ginext.Context) {
	pending := h.relocation.Pending()
	if pending == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrNoRelocationPending.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToRelocationResponse(*pending))
}

func (h *Handler) ChooseRelocationDestination(c *ginext.Context) {
	var req dto.RelocationDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.relocation.ChooseDestination(c.Request.Context(), req.SeatID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "relocated"})
}

func (h *Handler) CancelRelocation(c *ginext.Context) {
	if err := h.relocation.Cancel(); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSeatNotFound),
		errors.Is(err, domain.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSeatOccupied),
		errors.Is(err, domain.ErrSeatNotOccupied),
		errors.Is(err, domain.ErrOwnerSeatHeld),
		errors.Is(err, domain.ErrInvalidRelocationTarget),
		errors.Is(err, domain.ErrRelocationPending),
		errors.Is(err, domain.ErrNoRelocationPending),
		errors.Is(err, domain.ErrWeekLocked),
		errors.Is(err, domain.ErrWeekInactive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRecordWriteFailed):
		// The write did not apply; this must never look like success.
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

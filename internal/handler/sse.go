package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/handler/dto"
	"github.com/mobac1989/buildots-seating/internal/week"
)

// StreamAttendance pushes the resolved attendance for a date as
// server-sent events. The first event carries the current state, then
// one event per snapshot update until the client disconnects.
func (h *Handler) StreamAttendance(c *ginext.Context) {
	date := c.Query("date")
	if !week.ValidDate(date) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or missing date"})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "streaming unsupported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	updates, cancel := h.snapshots.Subscribe()
	defer cancel()

	if err := h.writeAttendanceEvent(c, flusher, h.snapshots.Current(), date); err != nil {
		return
	}

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := h.writeAttendanceEvent(c, flusher, snap, date); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeAttendanceEvent(c *ginext.Context, flusher http.Flusher, snap domain.Snapshot, date string) error {
	records, err := h.attendance.Resolve(snap, date, nil)
	if err != nil {
		return err
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToAttendanceResponse(r))
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.Writer, "event: attendance\ndata: %s\n\n", payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

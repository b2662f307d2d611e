// Package catalog loads the static seat catalog from the embedded
// floor-plan grid. The catalog is read once at startup and immutable
// afterwards.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

//go:embed floorplan.csv
var floorplanCSV []byte

//go:embed owners.csv
var ownersCSV []byte

// Catalog is the ordered set of seats with lookup indexes.
type Catalog struct {
	seats   []domain.Seat
	byID    map[string]domain.Seat
	byOwner map[string]domain.Seat
}

// Load parses the embedded floor plan. Grid cells holding a number are
// seats; everything else (floor, walls, rooms) is layout-only and not
// part of the catalog.
func Load() (*Catalog, error) {
	return load(floorplanCSV, ownersCSV)
}

func load(plan, owners []byte) (*Catalog, error) {
	ownerNames, err := parseOwners(owners)
	if err != nil {
		return nil, err
	}

	rows, err := csv.NewReader(bytes.NewReader(plan)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse floor plan: %w", err)
	}

	c := &Catalog{
		byID:    make(map[string]domain.Seat),
		byOwner: make(map[string]domain.Seat),
	}
	for y, row := range rows {
		for x, cell := range row {
			cell = strings.TrimSpace(cell)
			if _, err := strconv.Atoi(cell); err != nil {
				continue
			}
			if _, dup := c.byID[cell]; dup {
				return nil, fmt.Errorf("duplicate seat %q in floor plan", cell)
			}
			seat := domain.Seat{
				ID:        cell,
				Label:     cell,
				OwnerName: ownerNames[cell],
				X:         x + 1,
				Y:         y + 1,
			}
			c.seats = append(c.seats, seat)
			c.byID[seat.ID] = seat
			if seat.HasOwner() {
				c.byOwner[seat.OwnerName] = seat
			}
		}
	}
	if len(c.seats) == 0 {
		return nil, fmt.Errorf("floor plan contains no seats")
	}

	sort.Slice(c.seats, func(i, j int) bool {
		a, _ := strconv.Atoi(c.seats[i].Label)
		b, _ := strconv.Atoi(c.seats[j].Label)
		return a < b
	})

	return c, nil
}

func parseOwners(data []byte) (map[string]string, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse owners: %w", err)
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("owners row %v: want 2 fields", row)
		}
		names[strings.TrimSpace(row[0])] = strings.TrimSpace(row[1])
	}
	return names, nil
}

// Seats returns all seats ordered by numeric label. Callers must not
// mutate the returned slice.
func (c *Catalog) Seats() []domain.Seat {
	return c.seats
}

// ByID looks a seat up by its identifier.
func (c *Catalog) ByID(id string) (domain.Seat, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// ByOwner returns the seat whose default owner is name.
func (c *Catalog) ByOwner(name string) (domain.Seat, bool) {
	s, ok := c.byOwner[name]
	return s, ok
}

// IsOwner reports whether name is a default owner of any seat.
func (c *Catalog) IsOwner(name string) bool {
	_, ok := c.byOwner[name]
	return ok
}

package domain

import (
	"strings"
	"time"
)

// EphemeralKeyPrefix marks record keys generated for walk-up bookings.
// Records under such keys are garbage-collected once their bookings
// map empties; owner records (keyed by the owner's name) never are.
const EphemeralKeyPrefix = "booking_"

// PreferenceRecord is one identity's attendance preferences. The JSON
// field names match the documents the store already holds, so records
// written by any client version stay readable.
//
// Bookings holds at most one seat per date: one person, one seat, one
// day. Two different records may transiently claim the same seat/date;
// that race is detected at commit time, never merged silently.
type PreferenceRecord struct {
	Name      string            `json:"name"`
	FixedDays []time.Weekday    `json:"fixedDays"`
	Overrides map[string]bool   `json:"nextWeekOverrides"`
	Bookings  map[string]string `json:"bookings"`
}

// NewPreferenceRecord returns an empty record for name with all
// containers allocated.
func NewPreferenceRecord(name string) PreferenceRecord {
	return PreferenceRecord{
		Name:      name,
		FixedDays: []time.Weekday{},
		Overrides: map[string]bool{},
		Bookings:  map[string]string{},
	}
}

// Normalize fills nil containers left by decoding partial documents.
// The store has no schema enforcement, so missing fields are routine.
func (r *PreferenceRecord) Normalize() {
	if r.FixedDays == nil {
		r.FixedDays = []time.Weekday{}
	}
	if r.Overrides == nil {
		r.Overrides = map[string]bool{}
	}
	if r.Bookings == nil {
		r.Bookings = map[string]string{}
	}
}

// Clone deep-copies the record so callers can mutate it without
// touching the shared snapshot.
func (r PreferenceRecord) Clone() PreferenceRecord {
	out := PreferenceRecord{
		Name:      r.Name,
		FixedDays: make([]time.Weekday, len(r.FixedDays)),
		Overrides: make(map[string]bool, len(r.Overrides)),
		Bookings:  make(map[string]string, len(r.Bookings)),
	}
	copy(out.FixedDays, r.FixedDays)
	for k, v := range r.Overrides {
		out.Overrides[k] = v
	}
	for k, v := range r.Bookings {
		out.Bookings[k] = v
	}
	return out
}

// HasFixedDay reports whether weekday is part of the recurring
// attendance pattern.
func (r PreferenceRecord) HasFixedDay(day time.Weekday) bool {
	for _, d := range r.FixedDays {
		if d == day {
			return true
		}
	}
	return false
}

// IsComing resolves the record's attendance for a date: an explicit
// override wins, otherwise the fixed-day pattern decides.
func (r PreferenceRecord) IsComing(date string, day time.Weekday) bool {
	if v, ok := r.Overrides[date]; ok {
		return v
	}
	return r.HasFixedDay(day)
}

// Snapshot is the full contents of the preference store, keyed by
// record identity. It is pushed whole on every change.
type Snapshot map[string]PreferenceRecord

// IsEphemeralKey reports whether key was generated for a walk-up
// booking rather than naming a seat owner.
func IsEphemeralKey(key string) bool {
	return strings.HasPrefix(key, EphemeralKeyPrefix)
}

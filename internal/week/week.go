// Package week implements the time-window policy: which five-day week
// is current, which is next, and whether they are open for changes.
// Everything here is a pure function of wall-clock time, so every
// client agrees on lock state without any coordination.
package week

import (
	"fmt"
	"time"
)

// DateFormat is the ISO date layout used for all per-date keys.
const DateFormat = "2006-01-02"

// WorkDays is the fixed working-week length, Sunday through Thursday.
const WorkDays = 5

// DayNames are display names for the five working weekdays, indexed by
// position in a week range.
var DayNames = [WorkDays]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}

// Policy holds the lock and activation configuration. The zero value
// is not useful; use New.
type Policy struct {
	lockDay         time.Weekday
	lockHour        int
	activeStartHour int
	loc             *time.Location
}

// New builds a policy. lockDay/lockHour is the weekly cutoff after
// which next week's plan is frozen; activeStartHour opens the
// current-week window on Sunday morning.
func New(lockDay time.Weekday, lockHour, activeStartHour int, loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{
		lockDay:         lockDay,
		lockHour:        lockHour,
		activeStartHour: activeStartHour,
		loc:             loc,
	}
}

// Now returns the current time in the policy's operating timezone.
func (p Policy) Now() time.Time {
	return time.Now().In(p.loc)
}

// CurrentWeekRange returns the five ISO dates (Sun-Thu) of the week
// containing now.
func (p Policy) CurrentWeekRange(now time.Time) []string {
	now = now.In(p.loc)
	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	return weekFrom(sunday)
}

// NextWeekRange returns the five ISO dates of the upcoming
// Sunday-started week. On a Sunday this is still the week after the
// current one, never the week already in progress.
func (p Policy) NextWeekRange(now time.Time) []string {
	now = now.In(p.loc)
	daysUntil := 7 - int(now.Weekday())
	sunday := now.AddDate(0, 0, daysUntil)
	return weekFrom(sunday)
}

func weekFrom(sunday time.Time) []string {
	dates := make([]string, 0, WorkDays)
	for i := 0; i < WorkDays; i++ {
		dates = append(dates, sunday.AddDate(0, 0, i).Format(DateFormat))
	}
	return dates
}

// IsNextWeekLocked reports whether next week's plan is frozen. Locking
// is monotonic within a week and resets at the Sunday boundary.
func (p Policy) IsNextWeekLocked(now time.Time) bool {
	now = now.In(p.loc)
	day := now.Weekday()
	if day > p.lockDay {
		return true
	}
	return day == p.lockDay && now.Hour() >= p.lockHour
}

// IsCurrentWeekActive reports whether the current-week walk-up window
// is open: closed on the two non-working days, before the Sunday start
// hour, and from the lock cutoff onward.
func (p Policy) IsCurrentWeekActive(now time.Time) bool {
	now = now.In(p.loc)
	day := now.Weekday()
	if day == time.Friday || day == time.Saturday {
		return false
	}
	if day == time.Sunday && now.Hour() < p.activeStartHour {
		return false
	}
	if day == p.lockDay && now.Hour() >= p.lockHour {
		return false
	}
	return true
}

// Countdown is the time remaining until the next lock instant.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// CountdownToLock computes how long until next week's plan freezes.
func (p Policy) CountdownToLock(now time.Time) Countdown {
	now = now.In(p.loc)
	daysToAdd := (int(p.lockDay) - int(now.Weekday()) + 7) % 7
	if daysToAdd == 0 && now.Hour() >= p.lockHour {
		daysToAdd = 7
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), p.lockHour, 0, 0, 0, p.loc)
	target = target.AddDate(0, 0, daysToAdd)

	diff := target.Sub(now)
	if diff < 0 {
		return Countdown{}
	}
	return Countdown{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff % (24 * time.Hour) / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
	}
}

// IsPast reports whether date falls before now's calendar day. ISO
// dates compare lexically.
func (p Policy) IsPast(date string, now time.Time) bool {
	return date < now.In(p.loc).Format(DateFormat)
}

// Weekday parses an ISO date and returns its weekday.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t.Weekday(), nil
}

// ValidDate reports whether date is a well-formed ISO date.
func ValidDate(date string) bool {
	_, err := time.Parse(DateFormat, date)
	return err == nil
}

package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return New(time.Thursday, 14, 8, time.UTC)
}

// 2025-06-01 is a Sunday.
func date(day int, hour, minute int) time.Time {
	return time.Date(2025, time.June, day, hour, minute, 0, 0, time.UTC)
}

func TestCurrentWeekRange(t *testing.T) {
	p := testPolicy()

	want := []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"}

	assert.Equal(t, want, p.CurrentWeekRange(date(1, 0, 0)))  // Sunday itself
	assert.Equal(t, want, p.CurrentWeekRange(date(4, 12, 0))) // Wednesday
	assert.Equal(t, want, p.CurrentWeekRange(date(7, 23, 59))) // Saturday
}

func TestNextWeekRange(t *testing.T) {
	p := testPolicy()

	want := []string{"2025-06-08", "2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12"}

	assert.Equal(t, want, p.NextWeekRange(date(4, 12, 0)))
	// On a Sunday next week is still the week after, never today's week.
	assert.Equal(t, want, p.NextWeekRange(date(1, 9, 0)))
}

func TestIsNextWeekLocked(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"thursday just before cutoff", date(5, 13, 59), false},
		{"thursday at cutoff", date(5, 14, 0), true},
		{"thursday evening", date(5, 19, 30), true},
		{"friday", date(6, 9, 0), true},
		{"saturday", date(7, 9, 0), true},
		{"sunday resets the lock", date(8, 0, 0), false},
		{"monday", date(2, 12, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsNextWeekLocked(tt.now))
		})
	}
}

func TestIsCurrentWeekActive(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"sunday before start hour", date(1, 7, 59), false},
		{"sunday at start hour", date(1, 8, 0), true},
		{"midweek", date(3, 12, 0), true},
		{"thursday before cutoff", date(5, 13, 0), true},
		{"thursday at cutoff", date(5, 14, 0), false},
		{"friday", date(6, 12, 0), false},
		{"saturday", date(7, 12, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsCurrentWeekActive(tt.now))
		})
	}
}

func TestCountdownToLock(t *testing.T) {
	p := testPolicy()

	got := p.CountdownToLock(date(4, 12, 30)) // Wednesday
	assert.Equal(t, Countdown{Days: 1, Hours: 1, Minutes: 30}, got)

	// Past this week's cutoff the countdown targets next Thursday.
	got = p.CountdownToLock(date(5, 15, 0))
	assert.Equal(t, Countdown{Days: 6, Hours: 23, Minutes: 0}, got)
}

func TestIsPast(t *testing.T) {
	p := testPolicy()

	now := date(4, 12, 0)
	assert.True(t, p.IsPast("2025-06-03", now))
	assert.False(t, p.IsPast("2025-06-04", now))
	assert.False(t, p.IsPast("2025-06-05", now))
}

func TestWeekday(t *testing.T) {
	day, err := Weekday("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	_, err = Weekday("not-a-date")
	require.Error(t, err)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-06-01"))
	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("01/06/2025"))
}

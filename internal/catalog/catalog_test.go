package catalog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	seats := c.Seats()
	require.Len(t, seats, 51)

	for i, s := range seats {
		assert.Equal(t, strconv.Itoa(i+1), s.Label)
		assert.True(t, s.HasOwner(), "seat %s has no owner", s.Label)
		assert.Positive(t, s.X)
		assert.Positive(t, s.Y)
	}
}

func TestLookups(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	seat, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Yahav Sofer", seat.OwnerName)

	seat, ok = c.ByOwner("Bar Ziony")
	require.True(t, ok)
	assert.Equal(t, "2", seat.ID)

	_, ok = c.ByID("999")
	assert.False(t, ok)

	assert.True(t, c.IsOwner("Yahav Sofer"))
	assert.False(t, c.IsOwner("Nobody Nowhere"))
}

func TestLoadRejectsDuplicateSeats(t *testing.T) {
	plan := []byte("1,F\nF,1\n")
	owners := []byte("1,Somebody\n")

	_, err := load(plan, owners)
	require.Error(t, err)
}

func TestLoadRejectsEmptyPlan(t *testing.T) {
	plan := []byte("F,F\nF,Wall\n")

	_, err := load(plan, []byte("1,Somebody\n"))
	require.Error(t, err)
}

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatMap_Bounds(t *testing.T) {
	_, err := NewSeatMap(-1)
	assert.Error(t, err)

	_, err = NewSeatMap(BusCapacity + 1)
	assert.Error(t, err)

	m, err := NewSeatMap(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Available())
}

func TestSeatMap_Occupied(t *testing.T) {
	// 30 available means the first 14 are sold
	m, err := NewSeatMap(30)
	require.NoError(t, err)

	for n := 1; n <= 14; n++ {
		assert.True(t, m.Occupied(n), "seat %d should be occupied", n)
	}
	for n := 15; n <= BusCapacity; n++ {
		assert.False(t, m.Occupied(n), "seat %d should be open", n)
	}

	// Out-of-range positions are never occupied
	assert.False(t, m.Occupied(0))
	assert.False(t, m.Occupied(BusCapacity+1))
}

func TestSeatMap_ValidateSeat(t *testing.T) {
	m, err := NewSeatMap(30)
	require.NoError(t, err)

	assert.ErrorIs(t, m.ValidateSeat(0), ErrSeatOutOfRange)
	assert.ErrorIs(t, m.ValidateSeat(45), ErrSeatOutOfRange)
	assert.ErrorIs(t, m.ValidateSeat(5), ErrSeatOccupied)
	assert.NoError(t, m.ValidateSeat(20))
}

func TestSeatMap_ToggleAddAndRemove(t *testing.T) {
	m, err := NewSeatMap(44)
	require.NoError(t, err)

	selection, err := m.Toggle(nil, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, selection)

	selection, err = m.Toggle(selection, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, selection)

	// Toggling a selected seat removes it
	selection, err = m.Toggle(selection, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, selection)
}

func TestSeatMap_ToggleAtCapKeepsSelection(t *testing.T) {
	m, err := NewSeatMap(44)
	require.NoError(t, err)

	selection := []int{7, 8}
	got, err := m.Toggle(selection, 9, 2)

	assert.ErrorIs(t, err, ErrSelectionComplete)
	assert.Equal(t, []int{7, 8}, got)
}

func TestSeatMap_ToggleOccupiedSeat(t *testing.T) {
	m, err := NewSeatMap(30)
	require.NoError(t, err)

	got, err := m.Toggle([]int{20}, 3, 2)
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Equal(t, []int{20}, got)
}

func TestSeatMap_ValidateSelection(t *testing.T) {
	m, err := NewSeatMap(30)
	require.NoError(t, err)

	assert.NoError(t, m.ValidateSelection([]int{20, 21}, 2))

	// A partial selection is a valid intermediate state
	assert.NoError(t, m.ValidateSelection([]int{20}, 2))
	assert.NoError(t, m.ValidateSelection(nil, 2))

	// More seats than passengers
	assert.Error(t, m.ValidateSelection([]int{20, 21, 22}, 2))

	// Duplicate
	assert.Error(t, m.ValidateSelection([]int{20, 20}, 2))

	// Occupied seat
	assert.Error(t, m.ValidateSelection([]int{3, 20}, 2))
}

func TestSeatMap_Layout(t *testing.T) {
	m, err := NewSeatMap(30)
	require.NoError(t, err)

	layout := m.Layout([]int{20})

	require.Len(t, layout, SeatRows)
	for _, row := range layout {
		require.Len(t, row, SeatsPerRow)
	}

	assert.Equal(t, 1, layout[0][0].Number)
	assert.Equal(t, BusCapacity, layout[SeatRows-1][SeatsPerRow-1].Number)

	// Seat 20 sits in row 5 (1-based), column 4
	assert.True(t, layout[4][3].Selected)
	assert.False(t, layout[4][3].Occupied)
	assert.True(t, layout[0][0].Occupied)
}

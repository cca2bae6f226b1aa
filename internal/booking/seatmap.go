package booking

import (
	"errors"
	"fmt"
)

const (
	// BusCapacity is the passenger seat count of every coach
	BusCapacity = 44

	// SeatsPerRow is the 2+2 layout across the aisle
	SeatsPerRow = 4

	// SeatRows is the number of passenger rows; the driver position is
	// rendered by clients but is not a seat and never gets a number
	SeatRows = 11
)

var (
	ErrSeatOutOfRange    = errors.New("seat number out of range")
	ErrSeatOccupied      = errors.New("seat is already occupied")
	ErrSelectionComplete = errors.New("seat selection already has one seat per passenger")
)

// SeatMap models occupancy for a single departure. Seats are numbered
// 1..44; the first 44-available seats are occupied, matching how the
// inventory estimate is defined.
type SeatMap struct {
	available int
}

func NewSeatMap(availableSeats int) (*SeatMap, error) {
	if availableSeats < 0 || availableSeats > BusCapacity {
		return nil, fmt.Errorf("available seats %d outside 0..%d", availableSeats, BusCapacity)
	}
	return &SeatMap{available: availableSeats}, nil
}

// Occupied reports whether seat n is taken by an earlier sale
func (m *SeatMap) Occupied(n int) bool {
	return n >= 1 && n <= BusCapacity-m.available
}

// Available returns the number of open seats
func (m *SeatMap) Available() int {
	return m.available
}

// ValidateSeat checks that seat n exists and is open
func (m *SeatMap) ValidateSeat(n int) error {
	if n < 1 || n > BusCapacity {
		return ErrSeatOutOfRange
	}
	if m.Occupied(n) {
		return ErrSeatOccupied
	}
	return nil
}

// Toggle adds seat n to selection, or removes it if already selected.
// Adding past the passenger cap fails with ErrSelectionComplete so the
// caller can surface the notice without losing the current selection.
func (m *SeatMap) Toggle(selection []int, n, passengerCap int) ([]int, error) {
	if err := m.ValidateSeat(n); err != nil {
		return selection, err
	}

	for i, seat := range selection {
		if seat == n {
			return append(selection[:i:i], selection[i+1:]...), nil
		}
	}

	if len(selection) >= passengerCap {
		return selection, ErrSelectionComplete
	}

	return append(selection, n), nil
}

// ValidateSelection checks a selection against the map: every seat
// open, no duplicates, and never more seats than passengers. A partial
// selection is a valid intermediate state; the exact-count requirement
// only applies when the traveler continues to the next step.
func (m *SeatMap) ValidateSelection(selection []int, passengerCount int) error {
	if len(selection) > passengerCount {
		return fmt.Errorf("selected %d seats for %d passengers", len(selection), passengerCount)
	}

	seen := make(map[int]bool, len(selection))
	for _, n := range selection {
		if seen[n] {
			return fmt.Errorf("seat %d selected twice", n)
		}
		seen[n] = true
		if err := m.ValidateSeat(n); err != nil {
			return fmt.Errorf("seat %d: %w", n, err)
		}
	}

	return nil
}

// SeatState is one seat in the rendered map
type SeatState struct {
	Number   int  `json:"number"`
	Occupied bool `json:"occupied"`
	Selected bool `json:"selected"`
}

// Layout renders the full 11x4 map with the given selection applied
func (m *SeatMap) Layout(selection []int) [][]SeatState {
	selected := make(map[int]bool, len(selection))
	for _, n := range selection {
		selected[n] = true
	}

	rows := make([][]SeatState, SeatRows)
	seat := 1
	for r := 0; r < SeatRows; r++ {
		row := make([]SeatState, SeatsPerRow)
		for c := 0; c < SeatsPerRow; c++ {
			row[c] = SeatState{
				Number:   seat,
				Occupied: m.Occupied(seat),
				Selected: selected[seat],
			}
			seat++
		}
		rows[r] = row
	}

	return rows
}

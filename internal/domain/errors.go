package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrHallHasReservations = errors.New("hall has associated reservations")
)

// ConflictError reports the requested seats already reserved for the hall
// and date. The booking it belongs to persists nothing.
type ConflictError struct {
	Seats []Seat
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seats already reserved: %s", formatSeats(e.Seats))
}

// OutOfBoundsError reports the requested seats falling outside the hall's
// grid.
type OutOfBoundsError struct {
	Seats []Seat
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("seats out of hall bounds: %s", formatSeats(e.Seats))
}

func formatSeats(seats []Seat) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = fmt.Sprintf("(%d,%d)", seat.Row, seat.Col)
	}

	return strings.Join(parts, ", ")
}

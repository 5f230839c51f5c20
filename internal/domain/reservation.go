package domain

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Seat struct {
	Row int
	Col int
}

// Booking is one user's request to reserve a set of seats in a hall for a
// single date. All of its rows are persisted in one transaction or not at
// all; BookingRef ties together the rows created by the same request.
type Booking struct {
	UserID     int
	HallID     int
	Date       time.Time
	Seats      []Seat
	BookingRef uuid.UUID
}

// UserReservation is one persisted reservation row joined with its hall,
// as returned by the listing query.
type UserReservation struct {
	HallID         int
	HallName       string
	MovieTitle     string
	MoviePosterUrl string
	Date           time.Time
	Seat           Seat
	CreatedAt      time.Time
}

// ReservationGroup collects a user's seats for one hall and date. It is the
// unit the presenter attaches a proof artifact to.
type ReservationGroup struct {
	HallID         int
	HallName       string
	MovieTitle     string
	MoviePosterUrl string
	Date           time.Time
	Seats          []Seat
}

type ReservationRepository interface {
	// CreateAll persists every seat of the booking atomically. It returns
	// a ConflictError when any requested seat is already reserved for the
	// hall and date, or ErrSeatAlreadyReserved when a concurrent booking
	// wins the race at commit time. On any error no rows persist.
	CreateAll(ctx context.Context, booking Booking) error

	GetSeatsByHallAndDate(ctx context.Context, hallID int, date time.Time) ([]Seat, error)
	GetAllByUserFromDate(ctx context.Context, userID int, from time.Time) ([]UserReservation, error)

	// DeleteAllByUserHallAndDate removes every reservation the user holds
	// for the hall and date as one unit. It returns ErrRecordNotFound when
	// the user holds none.
	DeleteAllByUserHallAndDate(ctx context.Context, userID, hallID int, date time.Time) error
}

// GroupReservations folds flat reservation rows into per-hall-and-date
// groups. Seat order inside a group follows the input order; groups are
// ordered by date, then hall name. It is a pure transform so the presenter
// can be tested without storage.
func GroupReservations(rows []UserReservation) []ReservationGroup {
	groups := make([]ReservationGroup, 0)
	index := make(map[[2]int64]int)

	for _, row := range rows {
		key := [2]int64{int64(row.HallID), row.Date.Unix()}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i

			groups = append(groups, ReservationGroup{
				HallID:         row.HallID,
				HallName:       row.HallName,
				MovieTitle:     row.MovieTitle,
				MoviePosterUrl: row.MoviePosterUrl,
				Date:           row.Date,
			})
		}

		groups[i].Seats = append(groups[i].Seats, row.Seat)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].Date.Equal(groups[j].Date) {
			return groups[i].Date.Before(groups[j].Date)
		}
		return groups[i].HallName < groups[j].HallName
	})

	return groups
}

// DuplicateSeats returns every coordinate that appears more than once in
// the seat set, each reported a single time.
func DuplicateSeats(seats []Seat) []Seat {
	seen := make(map[Seat]int, len(seats))
	duplicates := make([]Seat, 0)

	for _, seat := range seats {
		seen[seat]++
		if seen[seat] == 2 {
			duplicates = append(duplicates, seat)
		}
	}

	return duplicates
}

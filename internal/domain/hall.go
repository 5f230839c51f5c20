package domain

import (
	"context"
	"time"
)

const (
	MinHallDimension = 1
	MaxHallDimension = 30
)

type Hall struct {
	ID             int
	Name           string
	MovieTitle     string
	MoviePosterUrl string
	Rows           int
	Columns        int
	ReservedSeats  int
	CreatedAt      time.Time
}

func (h Hall) TotalCapacity() int {
	return h.Rows * h.Columns
}

func (h Hall) AvailableSeats() int {
	return h.TotalCapacity() - h.ReservedSeats
}

// Contains reports whether the seat falls inside the hall's grid.
// Coordinates are 1-indexed.
func (h Hall) Contains(seat Seat) bool {
	return seat.Row >= 1 && seat.Row <= h.Rows && seat.Col >= 1 && seat.Col <= h.Columns
}

type HallRepository interface {
	Create(ctx context.Context, hall *Hall) error
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
	UpdateMovie(ctx context.Context, hall *Hall) error
	UpdateCapacity(ctx context.Context, hall *Hall) error
	Delete(ctx context.Context, id int) error
}

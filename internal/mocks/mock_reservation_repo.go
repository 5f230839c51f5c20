package mocks

import (
	"context"
	"time"

	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) CreateAll(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockReservationRepo) GetSeatsByHallAndDate(ctx context.Context, hallID int, date time.Time) ([]domain.Seat, error) {
	args := m.Called(ctx, hallID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockReservationRepo) GetAllByUserFromDate(ctx context.Context, userID int, from time.Time) ([]domain.UserReservation, error) {
	args := m.Called(ctx, userID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserReservation), args.Error(1)
}

func (m *MockReservationRepo) DeleteAllByUserHallAndDate(ctx context.Context, userID, hallID int, date time.Time) error {
	args := m.Called(ctx, userID, hallID, date)
	return args.Error(0)
}

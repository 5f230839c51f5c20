package app

import (
	"fmt"
	"time"

	"github.com/mkaraslan/cinema-hall-api/api"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func toApiHall(hall domain.Hall) api.Hall {
	return api.Hall{
		Id:             hall.ID,
		Name:           hall.Name,
		MovieTitle:     hall.MovieTitle,
		MoviePosterUrl: hall.MoviePosterUrl,
		Rows:           hall.Rows,
		Columns:        hall.Columns,
		TotalCapacity:  hall.TotalCapacity(),
		ReservedSeats:  hall.ReservedSeats,
		AvailableSeats: hall.AvailableSeats(),
		CreatedAt:      hall.CreatedAt,
	}
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	if len(seats) == 0 {
		return nil
	}

	apiSeats := make([]api.Seat, len(seats))
	for i, seat := range seats {
		apiSeats[i] = api.Seat{Row: seat.Row, Column: seat.Col}
	}

	return apiSeats
}

func toDomainSeats(seats []api.Seat) []domain.Seat {
	domainSeats := make([]domain.Seat, len(seats))
	for i, seat := range seats {
		domainSeats[i] = domain.Seat{Row: seat.Row, Col: seat.Column}
	}

	return domainSeats
}

func toApiSeatMatrix(matrix domain.SeatMatrix) [][]api.SeatStatus {
	apiMatrix := make([][]api.SeatStatus, len(matrix))

	for i, row := range matrix {
		apiRow := make([]api.SeatStatus, len(row))

		for j, cell := range row {
			apiRow[j] = api.SeatStatus{
				Row:        cell.Row,
				Column:     cell.Col,
				IsReserved: cell.Reserved,
			}
		}

		apiMatrix[i] = apiRow
	}

	return apiMatrix
}

func toApiDates(dates []time.Time) []types.Date {
	apiDates := make([]types.Date, len(dates))
	for i, date := range dates {
		apiDates[i] = types.Date{Time: date}
	}

	return apiDates
}

func seatIssue(seat domain.Seat, issue string) string {
	return fmt.Sprintf("seat (%d,%d) %s", seat.Row, seat.Col, issue)
}

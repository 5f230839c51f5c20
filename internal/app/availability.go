package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mkaraslan/cinema-hall-api/api"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

// GetSeatMap returns the full availability snapshot of a hall for one
// date: every seat of the grid with its reserved flag, plus the dates
// currently open for booking.
func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	hallID, err := app.readIntParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	date, err := app.readDateParam(r, "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !domain.InBookingWindow(time.Now(), date) {
		app.errorResponse(w, r, http.StatusUnprocessableEntity,
			fmt.Sprintf("date must be within the next %d days", domain.BookingWindowDays))
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	reserved, err := app.reservationRepo.GetSeatsByHallAndDate(r.Context(), hall.ID, domain.Midnight(date))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	matrix := domain.NewSeatMatrix(hall.Rows, hall.Columns, reserved)

	resp := api.SeatMapResponse{
		Hall:           toApiHall(*hall),
		Date:           types.Date{Time: domain.Midnight(date)},
		SeatMatrix:     toApiSeatMatrix(matrix),
		AvailableDates: toApiDates(domain.BookableDates(time.Now())),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

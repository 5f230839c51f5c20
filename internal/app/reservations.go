package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/mkaraslan/cinema-hall-api/api"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

// reservationSummary is the JSON payload baked into a reservation group's
// QR proof artifact, covering every seat the user holds for that hall and
// date.
type reservationSummary struct {
	UserId     int        `json:"userId"`
	HallId     int        `json:"hallId"`
	HallName   string     `json:"hallName"`
	MovieTitle string     `json:"movieTitle"`
	Date       string     `json:"date"`
	Seats      []api.Seat `json:"seats"`
}

// GetUserReservations lists the caller's upcoming reservations grouped by
// hall and date, each group carrying one QR proof artifact.
func (app *Application) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	rows, err := app.reservationRepo.GetAllByUserFromDate(r.Context(), userId, domain.Midnight(time.Now()))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	groups := domain.GroupReservations(rows)

	apiGroups := make([]api.ReservationGroup, len(groups))

	for i, group := range groups {
		summary := reservationSummary{
			UserId:     userId,
			HallId:     group.HallID,
			HallName:   group.HallName,
			MovieTitle: group.MovieTitle,
			Date:       group.Date.Format(domain.DateLayout),
			Seats:      toApiSeats(group.Seats),
		}

		qrCode, err := app.qrGenerator.Generate(summary)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		apiGroups[i] = api.ReservationGroup{
			HallId:         group.HallID,
			HallName:       group.HallName,
			MovieTitle:     group.MovieTitle,
			MoviePosterUrl: group.MoviePosterUrl,
			Date:           types.Date{Time: group.Date},
			Seats:          toApiSeats(group.Seats),
			QrCode:         qrCode,
		}
	}

	resp := api.UserReservationsResponse{
		Count:        len(apiGroups),
		Reservations: apiGroups,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelReservations removes every seat the caller holds for the hall and
// date as one unit. Cancellation is not restricted by the booking window.
func (app *Application) CancelReservations(w http.ResponseWriter, r *http.Request) {
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

	userId := app.contextGetUserId(r)

	err = app.reservationRepo.DeleteAllByUserHallAndDate(r.Context(), userId, hallID, domain.Midnight(date))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("reservations cancelled", "hall_id", hallID, "date", date.Format(domain.DateLayout))

	w.WriteHeader(http.StatusNoContent)
}

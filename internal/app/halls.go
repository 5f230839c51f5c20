package app

import (
	"errors"
	"net/http"

	"github.com/mkaraslan/cinema-hall-api/api"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
)

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request) {
	var input api.CreateHallRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	hall := domain.Hall{
		Name:           input.Name,
		MovieTitle:     input.MovieTitle,
		MoviePosterUrl: input.MoviePosterUrl,
		Rows:           input.Rows,
		Columns:        input.Columns,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("hall created", "hall_id", hall.ID, "rows", hall.Rows, "columns", hall.Columns)

	resp := api.HallResponse{
		Hall: toApiHall(hall),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiHalls := make([]api.Hall, len(halls))
	for i, hall := range halls {
		apiHalls[i] = toApiHall(hall)
	}

	resp := api.HallListResponse{
		Count: len(apiHalls),
		Halls: apiHalls,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHall(w http.ResponseWriter, r *http.Request) {
	hallID, err := app.readIntParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
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

	resp := api.HallResponse{
		Hall: toApiHall(*hall),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateHallMovie(w http.ResponseWriter, r *http.Request) {
	hallID, err := app.readIntParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateHallMovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
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

	hall.Name = input.Name
	hall.MovieTitle = input.MovieTitle
	hall.MoviePosterUrl = input.MoviePosterUrl

	err = app.hallRepo.UpdateMovie(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.HallResponse{
		Hall: toApiHall(*hall),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateHallCapacity resizes a hall's seating grid. Halls with active
// reservations are immutable, so the resize is refused while any exist.
func (app *Application) UpdateHallCapacity(w http.ResponseWriter, r *http.Request) {
	hallID, err := app.readIntParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateHallCapacityRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
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

	hall.Rows = input.Rows
	hall.Columns = input.Columns

	err = app.hallRepo.UpdateCapacity(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHallHasReservations):
			app.errorResponse(w, r, http.StatusConflict,
				"Cannot update capacity as there are active reservations for this hall")
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.HallResponse{
		Hall: toApiHall(*hall),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteHall(w http.ResponseWriter, r *http.Request) {
	hallID, err := app.readIntParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.hallRepo.Delete(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHallHasReservations):
			app.errorResponse(w, r, http.StatusConflict,
				"Cannot delete hall as there are reservations associated with it")
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("hall deleted", "hall_id", hallID)

	w.WriteHeader(http.StatusNoContent)
}

package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mkaraslan/cinema-hall-api/api"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

// bookingSummary is the JSON payload baked into the booking's QR proof
// artifact.
type bookingSummary struct {
	BookingRef string     `json:"bookingRef"`
	UserId     int        `json:"userId"`
	HallId     int        `json:"hallId"`
	HallName   string     `json:"hallName"`
	MovieTitle string     `json:"movieTitle"`
	Date       string     `json:"date"`
	Seats      []api.Seat `json:"seats"`
}

// CreateBooking reserves a set of seats in one hall for one date. The
// request is validated before any storage access; the conflict check and
// the inserts then run inside a single transaction so either every seat is
// reserved or none are.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

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

	seats := toDomainSeats(input.Seats)

	if duplicates := domain.DuplicateSeats(seats); len(duplicates) > 0 {
		app.badRequestResponse(w, r, fmt.Errorf(
			"request contains duplicate seats: %s", formatApiSeats(toApiSeats(duplicates))))
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), input.HallId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	outOfBounds := make([]domain.Seat, 0)
	for _, seat := range seats {
		if !hall.Contains(seat) {
			outOfBounds = append(outOfBounds, seat)
		}
	}

	if len(outOfBounds) > 0 {
		app.seatsOutOfBoundsResponse(w, r, &domain.OutOfBoundsError{Seats: outOfBounds})
		return
	}

	userId := app.contextGetUserId(r)

	booking := domain.Booking{
		UserID:     userId,
		HallID:     hall.ID,
		Date:       domain.Midnight(input.Date.Time),
		Seats:      seats,
		BookingRef: uuid.New(),
	}

	err = app.reservationRepo.CreateAll(r.Context(), booking)
	if err != nil {
		var conflictErr *domain.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			logger.Warn("booking rejected, seats already reserved",
				"hall_id", hall.ID, "conflicts", len(conflictErr.Seats))
			app.seatConflictResponse(w, r, conflictErr.Seats)
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			// A concurrent booking won the race after our conflict check;
			// the unique constraint stopped this one at commit.
			logger.Warn("booking lost seat race at commit", "hall_id", hall.ID)
			app.seatConflictResponse(w, r, nil)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	summary := bookingSummary{
		BookingRef: booking.BookingRef.String(),
		UserId:     userId,
		HallId:     hall.ID,
		HallName:   hall.Name,
		MovieTitle: hall.MovieTitle,
		Date:       booking.Date.Format(domain.DateLayout),
		Seats:      toApiSeats(seats),
	}

	// The booking is committed at this point. A rendering failure loses
	// only the artifact, never the reservation.
	qrCode, err := app.qrGenerator.Generate(summary)
	if err != nil {
		logger.Error("failed to render booking QR code", "booking_ref", booking.BookingRef, "error", err)
		qrCode = ""
	}

	resp := api.BookingResponse{
		BookingRef: booking.BookingRef.String(),
		UserId:     userId,
		HallId:     hall.ID,
		HallName:   hall.Name,
		MovieTitle: hall.MovieTitle,
		Date:       types.Date{Time: booking.Date},
		Seats:      toApiSeats(seats),
		QrCode:     qrCode,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func formatApiSeats(seats []api.Seat) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = fmt.Sprintf("(%d,%d)", seat.Row, seat.Column)
	}

	return strings.Join(parts, ", ")
}

package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(otelchi.Middleware("cinema-hall-api", otelchi.WithChiRoutes(r)))
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Route("/halls", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/", app.GetHalls)
		r.Get("/{hallID}", app.GetHall)
		r.Get("/{hallID}/seats/{date}", app.GetSeatMap)

		r.With(app.requireAdmin).Post("/", app.CreateHall)
		r.With(app.requireAdmin).Put("/{hallID}/movie", app.UpdateHallMovie)
		r.With(app.requireAdmin).Put("/{hallID}/capacity", app.UpdateHallCapacity)
		r.With(app.requireAdmin).Delete("/{hallID}", app.DeleteHall)
	})

	r.With(app.requireAuthentication).Post("/bookings", app.CreateBooking)

	r.With(app.requireAuthentication).Route("/users/me/reservations", func(r chi.Router) {
		r.Get("/", app.GetUserReservations)
		r.Delete("/{hallID}/{date}", app.CancelReservations)
	})

	return r
}

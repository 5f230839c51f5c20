// Package api defines the request and response shapes of the HTTP surface.
package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

// ConflictResponse is returned when one or more requested seats are already
// reserved for the hall and date. Seats is empty when the conflict was only
// detected by the storage constraint at commit time.
type ConflictResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	Seats     []Seat    `json:"seats,omitempty"`
}

type Seat struct {
	Row    int `json:"row" validate:"required,min=1,max=30"`
	Column int `json:"column" validate:"required,min=1,max=30"`
}

type SeatStatus struct {
	Row        int  `json:"row"`
	Column     int  `json:"column"`
	IsReserved bool `json:"isReserved"`
}

type Hall struct {
	Id             int       `json:"id"`
	Name           string    `json:"name"`
	MovieTitle     string    `json:"movieTitle"`
	MoviePosterUrl string    `json:"moviePosterUrl"`
	Rows           int       `json:"rows"`
	Columns        int       `json:"columns"`
	TotalCapacity  int       `json:"totalCapacity"`
	ReservedSeats  int       `json:"reservedSeats"`
	AvailableSeats int       `json:"availableSeats"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateHallRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	MovieTitle     string `json:"movieTitle" validate:"required,max=200"`
	MoviePosterUrl string `json:"moviePosterUrl" validate:"required,url"`
	Rows           int    `json:"rows" validate:"required,min=1,max=30"`
	Columns        int    `json:"columns" validate:"required,min=1,max=30"`
}

type UpdateHallMovieRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	MovieTitle     string `json:"movieTitle" validate:"required,max=200"`
	MoviePosterUrl string `json:"moviePosterUrl" validate:"required,url"`
}

type UpdateHallCapacityRequest struct {
	Rows    int `json:"rows" validate:"required,min=1,max=30"`
	Columns int `json:"columns" validate:"required,min=1,max=30"`
}

type HallResponse struct {
	Hall Hall `json:"hall"`
}

type HallListResponse struct {
	Count int    `json:"count"`
	Halls []Hall `json:"halls"`
}

type SeatMapResponse struct {
	Hall           Hall           `json:"hall"`
	Date           types.Date     `json:"date"`
	SeatMatrix     [][]SeatStatus `json:"seatMatrix"`
	AvailableDates []types.Date   `json:"availableDates"`
}

type CreateBookingRequest struct {
	HallId int        `json:"hallId" validate:"required,min=1"`
	Date   types.Date `json:"date" validate:"required,booking_window"`
	Seats  []Seat     `json:"seats" validate:"required,min=1,dive"`
}

type BookingResponse struct {
	BookingRef string     `json:"bookingRef"`
	UserId     int        `json:"userId"`
	HallId     int        `json:"hallId"`
	HallName   string     `json:"hallName"`
	MovieTitle string     `json:"movieTitle"`
	Date       types.Date `json:"date"`
	Seats      []Seat     `json:"seats"`
	QrCode     string     `json:"qrCode,omitempty"`
}

type ReservationGroup struct {
	HallId         int        `json:"hallId"`
	HallName       string     `json:"hallName"`
	MovieTitle     string     `json:"movieTitle"`
	MoviePosterUrl string     `json:"moviePosterUrl"`
	Date           types.Date `json:"date"`
	Seats          []Seat     `json:"seats"`
	QrCode         string     `json:"qrCode,omitempty"`
}

type UserReservationsResponse struct {
	Count        int                `json:"count"`
	Reservations []ReservationGroup `json:"reservations"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

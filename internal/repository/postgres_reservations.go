package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// CreateAll inserts every seat of the booking inside one transaction. The
// conflict check runs on the same transaction as the insert, and the unique
// constraint on (hall_id, seat_row, seat_col, reservation_date) is the
// final arbiter when two bookings race past the check: the loser's commit
// fails and none of its rows persist.
func (p *PostgresReservationRepository) CreateAll(ctx context.Context, booking domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		conflicts, err := findConflicts(ctx, tx, booking.HallID, booking.Date, booking.Seats)
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return &domain.ConflictError{Seats: conflicts}
		}

		rows := make([][]any, 0, len(booking.Seats))
		for _, seat := range booking.Seats {
			rows = append(rows, []any{
				booking.BookingRef,
				booking.UserID,
				booking.HallID,
				seat.Row,
				seat.Col,
				booking.Date,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"reservations"},
			[]string{"booking_ref", "user_id", "hall_id", "seat_row", "seat_col", "reservation_date"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		return nil
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrSeatAlreadyReserved
	}

	return err
}

// findConflicts returns the subset of the candidate seats already reserved
// for the hall and date, observed through the booking's own transaction.
func findConflicts(ctx context.Context, tx pgx.Tx, hallID int, date time.Time, seats []domain.Seat) ([]domain.Seat, error) {
	query := `
		SELECT seat_row, seat_col
		FROM reservations
		WHERE hall_id = $1 AND reservation_date = $2 AND (seat_row, seat_col) IN (`

	args := []any{hallID, date}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}

		query += fmt.Sprintf("($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, seat.Row, seat.Col)
	}

	query += `) ORDER BY seat_row, seat_col`

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conflicts := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(&seat.Row, &seat.Col)
		if err != nil {
			return nil, err
		}

		conflicts = append(conflicts, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return conflicts, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresReservationRepository) GetSeatsByHallAndDate(
	ctx context.Context,
	hallID int,
	date time.Time) ([]domain.Seat, error) {

	query := `
		SELECT seat_row, seat_col
		FROM reservations
		WHERE hall_id = $1 AND reservation_date = $2
		ORDER BY seat_row, seat_col
	`

	rows, err := p.db.Query(ctx, query, hallID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(&seat.Row, &seat.Col)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresReservationRepository) GetAllByUserFromDate(
	ctx context.Context,
	userID int,
	from time.Time) ([]domain.UserReservation, error) {

	query := `
		SELECT
			r.hall_id,
			ch.name,
			ch.movie_title,
			ch.movie_poster_url,
			r.reservation_date,
			r.seat_row,
			r.seat_col,
			r.created_at
		FROM reservations r
		JOIN cinema_halls ch ON r.hall_id = ch.id
		WHERE r.user_id = $1 AND r.reservation_date >= $2
		ORDER BY r.reservation_date, ch.name, r.seat_row, r.seat_col
	`

	rows, err := p.db.Query(ctx, query, userID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.UserReservation, 0)

	for rows.Next() {
		var reservation domain.UserReservation

		err = rows.Scan(
			&reservation.HallID,
			&reservation.HallName,
			&reservation.MovieTitle,
			&reservation.MoviePosterUrl,
			&reservation.Date,
			&reservation.Seat.Row,
			&reservation.Seat.Col,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (p *PostgresReservationRepository) DeleteAllByUserHallAndDate(
	ctx context.Context,
	userID, hallID int,
	date time.Time) error {

	query := `
		DELETE FROM reservations
		WHERE user_id = $1 AND hall_id = $2 AND reservation_date = $3
	`

	tag, err := p.db.Exec(ctx, query, userID, hallID, date)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

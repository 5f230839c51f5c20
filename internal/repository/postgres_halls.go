package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.Hall) error {
	query := `
		INSERT INTO cinema_halls (name, movie_title, movie_poster_url, seat_rows, seat_columns)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		hall.Name,
		hall.MovieTitle,
		hall.MoviePosterUrl,
		hall.Rows,
		hall.Columns).Scan(&hall.ID, &hall.CreatedAt)

	if err != nil {
		return err
	}

	return nil
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.Hall, error) {
	query := `
		SELECT
			ch.id,
			ch.name,
			ch.movie_title,
			ch.movie_poster_url,
			ch.seat_rows,
			ch.seat_columns,
			ch.created_at,
			(
				SELECT COUNT(*)
				FROM reservations r
				WHERE r.hall_id = ch.id AND r.reservation_date >= CURRENT_DATE
			) AS reserved_seats
		FROM cinema_halls ch
		ORDER BY ch.id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)

	for rows.Next() {
		var hall domain.Hall

		err = rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.MovieTitle,
			&hall.MoviePosterUrl,
			&hall.Rows,
			&hall.Columns,
			&hall.CreatedAt,
			&hall.ReservedSeats,
		)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.Hall, error) {
	query := `
		SELECT
			ch.id,
			ch.name,
			ch.movie_title,
			ch.movie_poster_url,
			ch.seat_rows,
			ch.seat_columns,
			ch.created_at,
			(
				SELECT COUNT(*)
				FROM reservations r
				WHERE r.hall_id = ch.id AND r.reservation_date >= CURRENT_DATE
			) AS reserved_seats
		FROM cinema_halls ch
		WHERE ch.id = $1
	`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.MovieTitle,
		&hall.MoviePosterUrl,
		&hall.Rows,
		&hall.Columns,
		&hall.CreatedAt,
		&hall.ReservedSeats,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

func (p *PostgresHallRepository) UpdateMovie(ctx context.Context, hall *domain.Hall) error {
	query := `
		UPDATE cinema_halls
		SET name = $1, movie_title = $2, movie_poster_url = $3
		WHERE id = $4
	`

	tag, err := p.db.Exec(ctx, query, hall.Name, hall.MovieTitle, hall.MoviePosterUrl, hall.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// UpdateCapacity resizes the hall's grid. Resizing is refused while active
// reservations (today or later) exist, checked inside the same transaction
// as the update so a concurrent booking cannot slip between check and
// resize.
func (p *PostgresHallRepository) UpdateCapacity(ctx context.Context, hall *domain.Hall) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var activeReservations int

		query := `
			SELECT COUNT(*)
			FROM reservations
			WHERE hall_id = $1 AND reservation_date >= CURRENT_DATE
		`

		err := tx.QueryRow(ctx, query, hall.ID).Scan(&activeReservations)
		if err != nil {
			return err
		}

		if activeReservations > 0 {
			return domain.ErrHallHasReservations
		}

		query = `
			UPDATE cinema_halls
			SET seat_rows = $1, seat_columns = $2
			WHERE id = $3
		`

		tag, err := tx.Exec(ctx, query, hall.Rows, hall.Columns, hall.ID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

// Delete removes the hall. Deletion is refused while any reservation rows,
// past or future, reference it.
func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var reservations int

		query := `SELECT COUNT(*) FROM reservations WHERE hall_id = $1`

		err := tx.QueryRow(ctx, query, id).Scan(&reservations)
		if err != nil {
			return err
		}

		if reservations > 0 {
			return domain.ErrHallHasReservations
		}

		query = `DELETE FROM cinema_halls WHERE id = $1`

		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

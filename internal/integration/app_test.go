package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraslan/cinema-hall-api/internal/app"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App *app.Application

	// DB is a separate pool for seeding and asserting on rows directly.
	DB *pgxpool.Pool

	// Sessions shares the application's Redis-backed session store, so
	// tests can mint authenticated sessions without an identity provider.
	Sessions *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	sessions := scs.New()
	sessions.Store = goredisstore.New(rdb)
	sessions.Cookie.Name = "session_id"

	return &TestApp{
		App:      application,
		DB:       db,
		Sessions: sessions,
	}, nil
}

// sessionCookie mints a committed session for the given user and returns
// the cookie the authentication middleware expects.
func (ta *TestApp) sessionCookie(t testing.TB, userId int, role string) *http.Cookie {
	t.Helper()

	ctx, err := ta.Sessions.Load(context.Background(), "")
	require.NoError(t, err)

	ta.Sessions.Put(ctx, app.SessionKeyUserId.String(), userId)
	ta.Sessions.Put(ctx, app.SessionKeyRole.String(), role)

	token, _, err := ta.Sessions.Commit(ctx)
	require.NoError(t, err)

	return &http.Cookie{Name: ta.Sessions.Cookie.Name, Value: token}
}

func (ta *TestApp) createHall(t testing.TB, name, movieTitle string, rows, columns int) int {
	t.Helper()

	var id int
	err := ta.DB.QueryRow(
		context.Background(),
		`INSERT INTO cinema_halls (name, movie_title, movie_poster_url, seat_rows, seat_columns)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		name, movieTitle, TestMoviePosterUrl, rows, columns,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func (ta *TestApp) countReservations(t testing.TB, hallID int, date string) int {
	t.Helper()

	var count int
	err := ta.DB.QueryRow(
		context.Background(),
		`SELECT COUNT(*) FROM reservations WHERE hall_id = $1 AND reservation_date = $2`,
		hallID, date,
	).Scan(&count)
	require.NoError(t, err)

	return count
}

func (ta *TestApp) truncateAll(t testing.TB) {
	t.Helper()

	_, err := ta.DB.Exec(
		context.Background(),
		`TRUNCATE TABLE reservations, cinema_halls RESTART IDENTITY CASCADE`,
	)
	require.NoError(t, err)
}

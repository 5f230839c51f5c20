package integration_test

const (
	dbName         = "cinema_hall"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

const (
	// User related constants
	TestUserId      = 1
	TestOtherUserId = 2
	TestAdminId     = 100

	// Hall related constants
	TestHallName       = "Hall A"
	TestMovieTitle     = "Test Movie"
	TestMoviePosterUrl = "https://example.com/poster.jpg"
	TestHallRows       = 5
	TestHallColumns    = 5
)

package main

import (
	"os"

	"github.com/mkaraslan/cinema-hall-api/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}

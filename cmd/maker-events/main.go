package main

import (
	"github.com/joho/godotenv"

	"github.com/shinichi-ohki/maker-events/internal/cli"
)

func main() {
	// Best-effort: a missing .env file is fine
	_ = godotenv.Load()

	cli.Execute()
}

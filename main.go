package main

import (
	"github.com/joho/godotenv"
	"github.com/nikogura/cvgen/cmd"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Match GOMAXPROCS to the container CPU quota. An invalid GOMAXPROCS env
	// leaves the runtime default in place.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	cmd.Execute()
}

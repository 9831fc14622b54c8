package main

import (
	"os"

	"github.com/joho/godotenv"

	"flowpilot/internal/cli"
)

func main() {
	// Best-effort: lets users keep FLOWPILOT_* preferences in a .env file.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/fadilmartias/careercraft/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// CAREERCRAFT_* overrides may live in .env
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

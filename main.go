package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/cli"
	"stealthcompany.com/medrec-client/pkg/zerolog_config"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Msg("Not found .env file in current directory, assuming environment variables are set")
	}

	zerolog_config.SetAppPrefix("medrec")

	cli.Execute()
}

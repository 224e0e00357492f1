package main

import (
	"crypto/rand"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/devserver"
	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/pkg/zerolog_config"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Msg("Not found .env file in current directory, assuming environment variables are set")
	}

	zerolog_config.SetAppPrefix("medrec-devserver")
	if err := zerolog_config.Startup(getEnvOrDefault("MEDREC_LOG_LEVEL", "info"), os.Getenv("MEDREC_LOG_FILE")); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	addr := getEnvOrDefault("MEDREC_DEVSERVER_ADDR", ":5000")
	signingKey := []byte(os.Getenv("MEDREC_DEVSERVER_KEY"))
	if len(signingKey) == 0 {
		// Ephemeral key: tokens do not survive a restart
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate signing key")
		}
	}

	metrics.StartSystemMetricsCollection("medrec-devserver")

	server := devserver.New(signingKey)

	log.Info().
		Str("addr", addr).
		Msg("Development backend starting")

	if err := http.ListenAndServe(addr, server.Routes()); err != nil {
		log.Fatal().
			Err(err).
			Msg("Failed to start server")
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

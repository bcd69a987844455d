package config

import (
	"os"
	"strings"
)

type Config struct {
	Port         string
	RateProvider string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	provider := strings.TrimSpace(os.Getenv("RATE_PROVIDER"))
	if provider == "" {
		provider = "sea"
	}
	return Config{
		Port:         port,
		RateProvider: provider,
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr        = ":8080"
	defaultJWTTTL      = "24h"
	defaultProviderURL = "https://parkingapi.p.rapidapi.com/search"
)

// Config is the runtime configuration of the API server, read from the
// environment. DatabaseURL empty selects the in-memory store.
type Config struct {
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	StripeSecretKey     string
	StripeWebhookSecret string

	// Optional external spot provider used to enrich search results.
	ParkingAPIKey string
	ParkingAPIURL string
}

// Load reads the configuration from the environment. The Stripe secret is
// required: the payment endpoints cannot start without it.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:                envOrDefault("ADDR", defaultAddr),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:           strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StripeSecretKey:     strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripeWebhookSecret: strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		ParkingAPIKey:       strings.TrimSpace(os.Getenv("PARKING_API_KEY")),
		ParkingAPIURL:       envOrDefault("PARKING_API_URL", defaultProviderURL),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is empty")
	}

	ttl, err := time.ParseDuration(envOrDefault("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTExpiry time.Duration

	FedaPaySecretKey  string
	FedaPayAPIBaseURL string

	// OrderMaxAge is how long an unpaid order may wait before the expiry
	// job cancels it.
	OrderMaxAge time.Duration
}

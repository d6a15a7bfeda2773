package utils

import (
	"log"
	"os"
)

var (
	JWTSecretKey         string
	JWTExpirationMinutes int64
)

// InitJWT loads the signing secret and token lifetime from the environment.
// A missing secret is fatal at startup, not per-request.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	// Token lifetime is expressed in minutes.
	JWTExpirationMinutes = GetEnvAsInt64("JWT_EXPIRATION_MINUTES", 36000)
}

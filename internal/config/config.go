package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sgould/authcore/internal/password"
)

// DefaultTokenTTL is the session token lifetime used when TOKEN_TTL is not
// set. The conservative value; override via TOKEN_TTL for longer sessions.
const DefaultTokenTTL = time.Hour

// DefaultCookieName is the cookie that carries the session token.
const DefaultCookieName = "auth-token"

type Config struct {
	Port       string
	JwtSecret  string
	DbURL      string
	TokenTTL   time.Duration
	BcryptCost int
	CookieName string
}

// Load reads the configuration from a .env file or environment variables and
// returns a Config struct. PORT and JWT_SECRET are required; DATABASE_URL is
// optional and its absence selects the in-memory store.
func Load() (*Config, error) {
	// Try to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	jwtSecret := os.Getenv("JWT_SECRET")
	if port == "" || jwtSecret == "" {
		return nil, fmt.Errorf("missing required environment variables: PORT=%q, JWT_SECRET set=%t", port, jwtSecret != "")
	}

	cfg := &Config{
		Port:       port,
		JwtSecret:  jwtSecret,
		DbURL:      os.Getenv("DATABASE_URL"),
		TokenTTL:   DefaultTokenTTL,
		BcryptCost: password.DefaultCost,
		CookieName: DefaultCookieName,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q", v)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", v)
		}
		cfg.BcryptCost = cost
	}

	if v := os.Getenv("COOKIE_NAME"); v != "" {
		cfg.CookieName = v
	}

	return cfg, nil
}

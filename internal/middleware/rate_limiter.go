package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimiter limits requests per IP for the general surface
// (100 requests per minute).
func RateLimiter() func(http.Handler) http.Handler {
	return httprate.LimitByIP(100, time.Minute)
}

// StrictRateLimiter is the tighter limit for credential endpoints, where
// each request may cost a bcrypt verification and advance a lockout counter
// (10 requests per minute per IP).
func StrictRateLimiter() func(http.Handler) http.Handler {
	return httprate.LimitByIP(10, time.Minute)
}

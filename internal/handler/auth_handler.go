package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sgould/authcore/internal/model"
	"github.com/sgould/authcore/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cookieName  string
}

func NewAuthHandler(authService *service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Register handles account creation. On success it sets the session cookie
// and returns the public account view.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Password) < 8 {
		sendJSONError(w, "Password must be at least 8 characters long", http.StatusBadRequest)
		return
	}

	acct, token, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrDuplicateAccount):
			code = http.StatusConflict
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
		}
		sendJSONError(w, err.Error(), code)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, acct)
}

// Login handles password verification. On success it sets a fresh session
// cookie and returns the public account view.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	acct, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		code := http.StatusInternalServerError
		var pwErr *service.InvalidPasswordError
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.As(err, &pwErr):
			code = http.StatusUnauthorized
		case errors.Is(err, service.ErrAccountLocked):
			code = http.StatusForbidden
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
		}
		sendJSONError(w, err.Error(), code)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, acct)
}

// Logout clears the session cookie. No server-side state exists to revoke,
// so this always succeeds, token or no token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, h.authService.Logout())
}

// CurrentUser resolves the inbound credential to an account view. An
// unauthenticated request is a normal outcome: it answers 200 with a null
// user, not an error status.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	acct, err := h.authService.ResolveCurrentUser(r.Context(), h.extractToken(r))
	if err != nil {
		sendJSONError(w, "Failed to resolve session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		User *model.PublicAccount `json:"user"`
	}{User: acct})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.TokenTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// extractToken reads the session token from the auth cookie or, failing
// that, a bearer Authorization header. The two transports are
// interchangeable carriers of the same token.
func (h *AuthHandler) extractToken(r *http.Request) string {
	if c, err := r.Cookie(h.cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	bearerToken := r.Header.Get("Authorization")
	if parts := strings.Split(bearerToken, " "); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// Helper function to send JSON error responses
func sendJSONError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, ErrorResponse{Error: message})
}

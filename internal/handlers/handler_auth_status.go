package handlers

import (
	"errors"
	"net/http"
	"time"

	"volteryde-gate/internal/middlewares"
	"volteryde-gate/internal/session"
)

type AuthStatusResponse struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

// GETAuthStatusHandler reports whether the session cookie would pass the gate. It never
// modifies the cookie.
func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: false,
	}

	credential, ok := session.ReadCookie(ctx.Request)
	if !ok {
		response.Reason = "missing"
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	claims, err := session.Validate(credential, ctx.Now())
	if err != nil {
		response.Reason = "malformed"
		if errors.Is(err, session.ErrExpiredCredential) {
			response.Reason = "expired"
		}
		ctx.Logger.Debug("session status check failed", "error", err)
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	expiresAt := claims.ExpiresAt.UTC()
	response.Authenticated = true
	response.ExpiresAt = &expiresAt
	ctx.WriteJSON(http.StatusOK, response)
}

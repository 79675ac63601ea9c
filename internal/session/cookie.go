package session

import (
	"net/http"
	"time"
)

const (
	CookieName   = "volteryde_auth_access_token"
	CookiePath   = "/"
	CookieMaxAge = 24 * time.Hour
)

// CookieOptions carries the only cookie attribute that varies by environment.
type CookieOptions struct {
	Secure bool
}

// NewCookie builds the session cookie. It is not HttpOnly: the browser guard reads it.
func NewCookie(credential string, opts CookieOptions) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    credential,
		Path:     CookiePath,
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: false,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewClearingCookie deletes the session cookie on the client.
func NewClearingCookie(opts CookieOptions) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     CookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: false,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ReadCookie returns the credential carried by r, if any. Empty values count as absent.
func ReadCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

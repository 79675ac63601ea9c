package guard

import (
	"errors"
	"strings"

	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/session"
)

var ErrMissingAppID = errors.New("appId must be a non-empty string")

// Settings is what the host page declares as window.volterydeGate. Fields the page left
// out or set to a non-string are empty.
type Settings struct {
	AppID               string
	Environment         string
	IdentityProviderURL string
}

// Configured is a validated Settings, ready to build a Guard from.
type Configured struct {
	AppID    string
	Resolver endpoints.Resolver
	Cookies  session.CookieOptions
}

func (s Settings) Validate() (Configured, error) {
	if s.AppID == "" || strings.TrimSpace(s.AppID) != s.AppID {
		return Configured{}, ErrMissingAppID
	}

	env, err := endpoints.ParseEnvironment(s.Environment)
	if err != nil {
		return Configured{}, err
	}

	urls := map[endpoints.Environment]string{}
	if s.IdentityProviderURL != "" {
		urls[env] = s.IdentityProviderURL
	}

	resolver, err := endpoints.NewResolver(env, urls)
	if err != nil {
		return Configured{}, err
	}

	return Configured{
		AppID:    s.AppID,
		Resolver: resolver,
		Cookies:  session.CookieOptions{Secure: env.IsProduction()},
	}, nil
}

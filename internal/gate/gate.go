// Package gate holds the single decision function shared by the edge gatekeeper and the
// client session guard. It reads no ambient state: the identity provider, the clock and
// the allowlist are all injected.
package gate

import (
	"net/url"
	"path"
	"strings"
	"time"

	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/session"
)

const (
	ParamCode     = "code"
	ParamApp      = "app"
	ParamRedirect = "redirect"
	ParamLogout   = "logout"

	loginPath = "login"
)

// DefaultAllowlist covers static assets, health checks and the identity callback.
var DefaultAllowlist = []string{
	"/_next/",
	"/static/",
	"/assets/",
	"/favicon.ico",
	"/api/v1/health",
	"/auth/callback",
	"/auth/logout",
}

// Request is everything one evaluation may look at.
type Request struct {
	// URL is the absolute URL the caller asked for.
	URL           *url.URL
	Credential    string
	HasCredential bool
}

type Gate struct {
	appID              string
	resolver           endpoints.Resolver
	allowlist          []string
	validateCredential bool
	now                func() time.Time
}

type Option func(*Gate)

func WithAllowlist(prefixes ...string) Option {
	return func(g *Gate) {
		g.allowlist = append([]string(nil), prefixes...)
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// WithoutCredentialValidation trusts any present cookie without decoding it.
// The browser guard runs this way; only the edge gate checks exp.
func WithoutCredentialValidation() Option {
	return func(g *Gate) {
		g.validateCredential = false
	}
}

func New(appID string, resolver endpoints.Resolver, opts ...Option) *Gate {
	g := &Gate{
		appID:              appID,
		resolver:           resolver,
		validateCredential: true,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Gate) AppID() string {
	return g.appID
}

// Evaluate maps a request to exactly one Decision.
func (g *Gate) Evaluate(req Request) Decision {
	if g.IsExempt(req.URL.Path) {
		return Decision{Kind: PassThrough}
	}

	if code := req.URL.Query().Get(ParamCode); code != "" {
		return Decision{
			Kind:       IssueCredentialAndRedirect,
			Location:   SameOriginURI(StripCode(req.URL)),
			Credential: code,
		}
	}

	if !req.HasCredential || req.Credential == "" {
		return Decision{
			Kind:     RedirectToLogin,
			Location: g.LoginURL(req.URL.String()),
			Reason:   session.ErrMissingCredential,
		}
	}

	if !g.validateCredential {
		return Decision{Kind: PassThrough}
	}

	if _, err := session.Validate(req.Credential, g.now()); err != nil {
		return Decision{
			Kind:     ClearAndRedirectToLogin,
			Location: g.LoginURL(req.URL.String()),
			Reason:   err,
		}
	}

	return Decision{Kind: PassThrough}
}

// IsExempt matches the cleaned path, so dot segments cannot climb out of an allowlisted prefix.
func (g *Gate) IsExempt(p string) bool {
	p = CleanPath(p)
	for _, prefix := range g.allowlist {
		if prefix != "" && strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// LoginURL is {identityProviderBase}/login?app=<id>&redirect=<returnTo>.
func (g *Gate) LoginURL(returnTo string) string {
	target := g.resolver.Resolve().JoinPath(loginPath)

	q := url.Values{}
	q.Set(ParamApp, g.appID)
	q.Set(ParamRedirect, returnTo)
	target.RawQuery = q.Encode()

	return target.String()
}

// LogoutURL is {identityProviderBase}/login?logout=true.
func LogoutURL(resolver endpoints.Resolver) string {
	target := resolver.Resolve().JoinPath(loginPath)
	target.RawQuery = url.Values{ParamLogout: {"true"}}.Encode()
	return target.String()
}

// StripCode returns a copy of u without the code parameter. Other parameters survive.
func StripCode(u *url.URL) *url.URL {
	clean := *u
	q := clean.Query()
	q.Del(ParamCode)
	clean.RawQuery = q.Encode()
	return &clean
}

// SameOriginURI is the escaped path and query of u with leading slashes collapsed, so a
// browser can only resolve it against the current origin.
func SameOriginURI(u *url.URL) string {
	uri := "/" + strings.TrimLeft(u.EscapedPath(), "/")
	if u.RawQuery != "" {
		uri += "?" + u.RawQuery
	}
	return uri
}

// CleanPath removes dot segments and repeated slashes. A trailing slash is kept.
func CleanPath(p string) string {
	if p == "" {
		return "/"
	}

	cleaned := path.Clean("/" + p)
	if strings.HasSuffix(p, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}

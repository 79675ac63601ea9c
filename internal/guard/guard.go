// Package guard is the browser-side counterpart of the edge gatekeeper for applications
// that render entirely on the client and cannot intercept the page request.
package guard

import (
	"log/slog"
	"net/url"
	"sync"
	"time"

	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/gate"
	"volteryde-gate/internal/session"
)

//go:generate mockgen -source=guard.go -destination=../mocks/browser.go -package=mocks

// Browser is the slice of the window API the guard touches.
type Browser interface {
	// Document reports false outside a browser, e.g. during server rendering.
	Document() (session.Document, bool)
	Location() *url.URL
	Navigate(target string)
	ReplaceHistory(target string)
}

type State int

const (
	Resolving State = iota
	Resolved
	NavigatingAway
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	case NavigatingAway:
		return "navigating_away"
	default:
		return "unknown"
	}
}

// ShouldRender is true only once the session is known to be usable.
func (s State) ShouldRender() bool {
	return s == Resolved
}

type Guard struct {
	gate     *gate.Gate
	cookies  session.CookieOptions
	now      func() time.Time
	observer func(State)
	logger   *slog.Logger

	once  sync.Once
	mu    sync.Mutex
	state State
}

type Option func(*Guard)

// WithObserver is called after every state change, outside the guard's lock.
func WithObserver(fn func(State)) Option {
	return func(g *Guard) {
		g.observer = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		g.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// New builds a guard for appID. The guard never validates exp on an existing cookie;
// only the edge gatekeeper does.
func New(appID string, resolver endpoints.Resolver, cookies session.CookieOptions, opts ...Option) *Guard {
	g := &Guard{
		cookies: cookies,
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.gate = gate.New(appID, resolver,
		gate.WithoutCredentialValidation(),
		gate.WithClock(g.now),
	)

	return g
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Mount evaluates the session once. Without a document it leaves the guard resolving
// and does not use up the evaluation, so a later browser mount still runs.
func (g *Guard) Mount(b Browser) State {
	doc, ok := b.Document()
	if !ok {
		return g.State()
	}

	location := b.Location()
	if location == nil {
		return g.State()
	}

	g.once.Do(func() {
		g.resolve(b, doc, location)
	})

	return g.State()
}

func (g *Guard) resolve(b Browser, doc session.Document, location *url.URL) {
	jar := session.NewDocumentJar(doc, g.cookies, g.now)
	credential, ok := jar.Get()

	decision := g.gate.Evaluate(gate.Request{
		URL:           location,
		Credential:    credential,
		HasCredential: ok,
	})

	g.logger.Debug("session guard decision", "app", g.gate.AppID(), "path", location.Path, "decision", decision.Kind.String())

	switch decision.Kind {
	case gate.PassThrough:
		g.setState(Resolved)
	case gate.IssueCredentialAndRedirect:
		jar.Set(decision.Credential)
		// the whole query string goes, not only code
		b.ReplaceHistory(gate.SameOriginURI(&url.URL{Path: location.Path, RawPath: location.RawPath}))
		g.setState(Resolved)
	case gate.RedirectToLogin, gate.ClearAndRedirectToLogin:
		decision.Apply(jar)
		b.Navigate(decision.Location)
		g.setState(NavigatingAway)
	}
}

func (g *Guard) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()

	if g.observer != nil {
		g.observer(s)
	}
}

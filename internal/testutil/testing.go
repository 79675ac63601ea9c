package testutil

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"volteryde-gate/internal/config"
	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/gate"
	"volteryde-gate/internal/logout"
	"volteryde-gate/internal/middlewares"
	"volteryde-gate/internal/session"
)

const (
	TestAppID          = "bi-partner"
	TestIdentityURL    = "https://auth.example.com"
	ValidCredential    = "abc.eyJleHAiOjk5OTk5OTk5OTl9.sig"
	ExpiredCredential  = "abc.eyJleHAiOjEwMH0.sig"
	ValidCredentialExp = int64(9999999999)
)

// TestNow is the fixed clock every TestContext runs on.
var TestNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext *middlewares.AppContext
	Request    *http.Request
	Response   *httptest.ResponseRecorder
	LogHandler *TestLogHandler
}

// TestConfig is a validated-looking config for the test application.
func TestConfig() *config.Config {
	return &config.Config{
		Server: config.DefaultServerConfig,
		Log:    config.DefaultLogConfig,
		CORS:   config.DefaultCORSConfig,
		Gate: config.GateConfig{
			AppID:       TestAppID,
			Environment: string(endpoints.EnvironmentDevelopment),
			Allowlist:   gate.DefaultAllowlist,
		},
		IdentityProvider: config.IdentityProviderConfig{
			URLs: map[string]string{string(endpoints.EnvironmentDevelopment): TestIdentityURL},
		},
	}
}

// NewBaseAppContext wires the gate and logout coordinator the way the server does, on TestNow.
func NewBaseAppContext(t *testing.T, logger *slog.Logger) *middlewares.AppContext {
	t.Helper()

	cfg := TestConfig()
	resolver, err := cfg.Resolver()
	if err != nil {
		t.Fatalf("failed to build resolver: %v", err)
	}

	clock := func() time.Time { return TestNow }
	g := gate.New(cfg.Gate.AppID, resolver,
		gate.WithAllowlist(cfg.Gate.Allowlist...),
		gate.WithClock(clock),
	)

	return &middlewares.AppContext{
		Config:  cfg,
		Logger:  logger,
		Gate:    g,
		Logout:  logout.New(resolver),
		Cookies: cfg.CookieOptions(),
		Clock:   clock,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	t.Helper()

	logHandler := NewTestLogHandler()
	appCtx := NewBaseAppContext(t, slog.New(logHandler))

	req := httptest.NewRequest(method, url, nil)
	rr := httptest.NewRecorder()

	appCtx.Context = req.Context()
	appCtx.Request = req
	appCtx.Response = rr

	return &TestContext{
		AppContext: appCtx,
		Request:    req,
		Response:   rr,
		LogHandler: logHandler,
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertLocation checks the redirect target
func (tc *TestContext) AssertLocation(t *testing.T, expected string) {
	if location := tc.Response.Header().Get("Location"); location != expected {
		t.Errorf("Expected Location %q, got %q", expected, location)
	}
}

// SessionCookie returns the Set-Cookie entry for the session cookie, if the response wrote one.
func (tc *TestContext) SessionCookie() (*http.Cookie, bool) {
	for _, c := range tc.Response.Result().Cookies() {
		if c.Name == session.CookieName {
			return c, true
		}
	}
	return nil, false
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// WithCookie attaches the session cookie to the request
func (tc *TestContext) WithCookie(credential string) *TestContext {
	tc.Request.AddCookie(&http.Cookie{Name: session.CookieName, Value: credential})
	return tc
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	tc.AppContext.Cookies = cfg.CookieOptions()
	return tc
}

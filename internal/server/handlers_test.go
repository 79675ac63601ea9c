package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"volteryde-gate/internal/session"
	"volteryde-gate/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newStaticRouter(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<html>spa</html>")
	writeFile(t, filepath.Join(dir, "favicon.ico"), "icon")
	writeFile(t, filepath.Join(dir, "assets", "app.js"), "console.log(1)")

	base := testutil.NewBaseAppContext(t, slog.New(testutil.NewTestLogHandler()))
	return setupRouter(base, newStaticHandler(dir))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func withSession(req *http.Request, credential string) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: credential})
	return req
}

func TestRouter_GatedApplication(t *testing.T) {
	router := newStaticRouter(t)

	t.Run("no session redirects to login", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest("GET", "https://host/dashboard", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t,
			testutil.TestIdentityURL+"/login?app="+testutil.TestAppID+"&redirect="+url.QueryEscape("https://host/dashboard"),
			rr.Header().Get("Location"))
	})

	t.Run("valid session falls back to index", func(t *testing.T) {
		rr := serve(router, withSession(httptest.NewRequest("GET", "https://host/dashboard", nil), testutil.ValidCredential))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "<html>spa</html>", rr.Body.String())
	})

	t.Run("callback sets cookie and strips code", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest("GET", "https://host/dashboard?code="+testutil.ValidCredential, nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
		assert.Contains(t, rr.Header().Get("Set-Cookie"), session.CookieName+"="+testutil.ValidCredential)
	})

	t.Run("allowlisted assets need no session", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest("GET", "https://host/assets/app.js", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "console.log(1)", rr.Body.String())

		rr = serve(router, httptest.NewRequest("GET", "https://host/favicon.ico", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "icon", rr.Body.String())
	})

	t.Run("expired session is cleared", func(t *testing.T) {
		rr := serve(router, withSession(httptest.NewRequest("GET", "https://host/settings", nil), testutil.ExpiredCredential))

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
	})
}

func TestRouter_SessionAPIIsNotGated(t *testing.T) {
	router := newStaticRouter(t)

	rr := serve(router, httptest.NewRequest("GET", "https://host/api/auth/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = serve(router, httptest.NewRequest("GET", "https://host/api/auth/login?rd=/reports", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "redirect_required")

	rr = serve(router, httptest.NewRequest("GET", "https://host/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, httptest.NewRequest("GET", "https://host/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_Logout(t *testing.T) {
	router := newStaticRouter(t)

	for _, method := range []string{"GET", "POST"} {
		t.Run(method, func(t *testing.T) {
			rr := serve(router, withSession(httptest.NewRequest(method, "https://host/auth/logout", nil), testutil.ValidCredential))

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, testutil.TestIdentityURL+"/login?logout=true", rr.Header().Get("Location"))
			assert.Contains(t, rr.Header().Get("Set-Cookie"), session.CookieName+"=;")
		})
	}
}

func TestRouter_UpstreamProxy(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Host", r.Host)
		w.Header().Set("X-Seen-Forwarded-Host", r.Header.Get("X-Forwarded-Host"))
		w.Header().Set("X-Seen-Forwarded-Proto", r.Header.Get("X-Forwarded-Proto"))
		_, _ = w.Write([]byte("upstream " + r.URL.RequestURI()))
	}))
	t.Cleanup(upstream.Close)

	proxy, err := newUpstreamProxy(upstream.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	base := testutil.NewBaseAppContext(t, slog.New(testutil.NewTestLogHandler()))
	router := setupRouter(base, proxy)

	rr := serve(router, withSession(httptest.NewRequest("GET", "https://bi.example.com/reports?range=7d", nil), testutil.ValidCredential))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "upstream /reports?range=7d", rr.Body.String())
	assert.Equal(t, "bi.example.com", rr.Header().Get("X-Seen-Host"))
	assert.Equal(t, "bi.example.com", rr.Header().Get("X-Seen-Forwarded-Host"))
	assert.Equal(t, "https", rr.Header().Get("X-Seen-Forwarded-Proto"))

	// the gate runs before the proxy
	rr = serve(router, httptest.NewRequest("GET", "https://bi.example.com/reports", nil))
	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
}

func TestUpstreamProxy_Unreachable(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	logs := testutil.NewTestLogHandler()
	proxy, err := newUpstreamProxy(deadURL, slog.New(logs))
	require.NoError(t, err)

	rr := serve(proxy, httptest.NewRequest("GET", "https://host/reports", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.True(t, logs.ContainsMessage(slog.LevelError, "upstream request failed"))
}

func TestDebugRouter_ExposesBuildInfo(t *testing.T) {
	rr := serve(setupDebugRouter(), httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "volteryde_gate_build_info")
}

func TestRouter_UnusualPathShapes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Path", r.URL.EscapedPath())
		_, _ = w.Write([]byte("upstream"))
	}))
	t.Cleanup(upstream.Close)

	proxy, err := newUpstreamProxy(upstream.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	base := testutil.NewBaseAppContext(t, slog.New(testutil.NewTestLogHandler()))
	router := setupRouter(base, proxy)

	t.Run("dot segments cannot skip the gate", func(t *testing.T) {
		for _, target := range []string{
			"https://bi.example.com/static/../dashboard",
			"https://bi.example.com/static/%2e%2e/dashboard",
			"https://bi.example.com/assets/%2E%2E/%2e%2e/dashboard",
		} {
			rr := serve(router, httptest.NewRequest("GET", target, nil))

			assert.Equal(t, http.StatusTemporaryRedirect, rr.Code, target)
			assert.Empty(t, rr.Header().Get("X-Seen-Path"), target)
			assert.Equal(t,
				testutil.TestIdentityURL+"/login?app="+testutil.TestAppID+"&redirect="+url.QueryEscape("https://bi.example.com/dashboard"),
				rr.Header().Get("Location"), target)
		}
	})

	t.Run("upstream receives the cleaned path", func(t *testing.T) {
		rr := serve(router, withSession(httptest.NewRequest("GET", "https://bi.example.com/static/%2e%2e/dashboard", nil), testutil.ValidCredential))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/dashboard", rr.Header().Get("X-Seen-Path"))
	})

	t.Run("callback on a double slash path stays on origin", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest("GET", "https://bi.example.com//evil.example/x?code="+testutil.ValidCredential, nil))

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "/evil.example/x", rr.Header().Get("Location"))
		assert.Contains(t, rr.Header().Get("Set-Cookie"), session.CookieName+"="+testutil.ValidCredential)
	})

	t.Run("escaped path bytes reach the upstream intact", func(t *testing.T) {
		rr := serve(router, withSession(httptest.NewRequest("GET", "https://bi.example.com/files/a%3Fb%23c", nil), testutil.ValidCredential))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/files/a%3Fb%23c", rr.Header().Get("X-Seen-Path"))
	})
}

func TestRouter_ProxyHeaders(t *testing.T) {
	newRequest := func() *http.Request {
		req := httptest.NewRequest("GET", "http://10.0.0.5:8080/dashboard", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", "evil.example")
		return req
	}
	loginFor := func(redirect string) string {
		return testutil.TestIdentityURL + "/login?app=" + testutil.TestAppID + "&redirect=" + url.QueryEscape(redirect)
	}

	t.Run("ignored by default", func(t *testing.T) {
		base := testutil.NewBaseAppContext(t, slog.New(testutil.NewTestLogHandler()))
		rr := serve(setupRouter(base, http.NotFoundHandler()), newRequest())

		assert.Equal(t, loginFor("http://10.0.0.5:8080/dashboard"), rr.Header().Get("Location"))
	})

	t.Run("honored when trusted", func(t *testing.T) {
		base := testutil.NewBaseAppContext(t, slog.New(testutil.NewTestLogHandler()))
		base.Config.Server.TrustProxyHeaders = true
		rr := serve(setupRouter(base, http.NotFoundHandler()), newRequest())

		assert.Equal(t, loginFor("https://evil.example/dashboard"), rr.Header().Get("Location"))
	})
}

package middlewares

import (
	"net/http"
	"net/url"

	"volteryde-gate/internal/gate"
)

// CleanPath rewrites the request path without dot segments or repeated slashes before
// routing, so the gate and the upstream see the same path.
func CleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cleaned := gate.CleanPath(r.URL.Path)
		if cleaned == r.URL.Path {
			next.ServeHTTP(w, r)
			return
		}

		r2 := new(http.Request)
		*r2 = *r
		r2.URL = new(url.URL)
		*r2.URL = *r.URL
		r2.URL.Path = cleaned
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}

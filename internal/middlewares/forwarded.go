package middlewares

import (
	"net/http"
	"net/url"
	"strings"
)

// RequestURL rebuilds the absolute URL the client asked for. Behind a reverse proxy the
// scheme and host come from X-Forwarded-Proto and X-Forwarded-Host; ProxyHeaders decides
// whether those headers survive.
func RequestURL(r *http.Request) *url.URL {
	u := &url.URL{
		Scheme:   requestScheme(r),
		Host:     requestHost(r),
		Path:     r.URL.Path,
		RawPath:  r.URL.RawPath,
		RawQuery: r.URL.RawQuery,
	}
	return u
}

func requestScheme(r *http.Request) string {
	if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto != "" {
		proto = strings.ToLower(proto)
		if proto == "http" || proto == "https" {
			return proto
		}
	}

	if r.TLS != nil {
		return "https"
	}

	return "http"
}

func requestHost(r *http.Request) string {
	if host := firstHeaderValue(r, "X-Forwarded-Host"); host != "" {
		return host
	}

	return r.Host
}

// firstHeaderValue takes the client-most entry of a comma separated proxy header.
func firstHeaderValue(r *http.Request, name string) string {
	value := r.Header.Get(name)
	if value == "" {
		return ""
	}

	first, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(first)
}

var proxyHeaders = []string{
	"X-Forwarded-Proto",
	"X-Forwarded-Host",
	"X-Forwarded-For",
	"X-Real-IP",
	"True-Client-IP",
}

// ProxyHeaders drops client supplied forwarding headers unless trusted is set. Trust them
// only behind a proxy that overwrites them.
func ProxyHeaders(trusted bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if trusted {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, name := range proxyHeaders {
				r.Header.Del(name)
			}
			next.ServeHTTP(w, r)
		})
	}
}

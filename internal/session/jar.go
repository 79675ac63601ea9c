package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen -source=jar.go -destination=../mocks/jar.go -package=mocks

// Jar is the single persistence capability the gate adapters need.
type Jar interface {
	Get() (string, bool)
	Set(credential string)
	Clear()
}

// HeaderJar reads the request Cookie header and writes Set-Cookie response headers.
type HeaderJar struct {
	r    *http.Request
	w    http.ResponseWriter
	opts CookieOptions
}

func NewHeaderJar(w http.ResponseWriter, r *http.Request, opts CookieOptions) *HeaderJar {
	return &HeaderJar{r: r, w: w, opts: opts}
}

func (j *HeaderJar) Get() (string, bool) {
	return ReadCookie(j.r)
}

func (j *HeaderJar) Set(credential string) {
	http.SetCookie(j.w, NewCookie(credential, j.opts))
}

func (j *HeaderJar) Clear() {
	http.SetCookie(j.w, NewClearingCookie(j.opts))
}

// Document is the browser document.cookie accessor pair.
type Document interface {
	Cookie() string
	SetCookie(line string)
}

// DocumentJar persists the credential through a Document. With no response header API
// available it formats the expiry itself.
type DocumentJar struct {
	doc  Document
	opts CookieOptions
	now  func() time.Time
}

func NewDocumentJar(doc Document, opts CookieOptions, now func() time.Time) *DocumentJar {
	if now == nil {
		now = time.Now
	}
	return &DocumentJar{doc: doc, opts: opts, now: now}
}

func (j *DocumentJar) Get() (string, bool) {
	return LookupDocumentCookie(j.doc.Cookie(), CookieName)
}

func (j *DocumentJar) Set(credential string) {
	expires := j.now().Add(CookieMaxAge)
	j.doc.SetCookie(FormatDocumentCookie(credential, expires, j.opts))
}

func (j *DocumentJar) Clear() {
	j.doc.SetCookie(FormatDocumentCookie("", time.Unix(0, 0), j.opts))
}

// FormatDocumentCookie renders a cookie assignment string for document.cookie.
func FormatDocumentCookie(value string, expires time.Time, opts CookieOptions) string {
	line := fmt.Sprintf("%s=%s; expires=%s; path=%s; SameSite=Lax",
		CookieName, value, expires.UTC().Format(http.TimeFormat), CookiePath)
	if opts.Secure {
		line += "; Secure"
	}
	return line
}

// LookupDocumentCookie finds name in a "k1=v1; k2=v2" document.cookie string.
func LookupDocumentCookie(header, name string) (string, bool) {
	for _, part := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || key != name {
			continue
		}
		if value == "" {
			return "", false
		}
		return value, true
	}

	return "", false
}

//go:build js && wasm

package guard

import (
	"net/url"
	"syscall/js"

	"volteryde-gate/internal/session"
)

type jsDocument struct {
	v js.Value
}

func (d jsDocument) Cookie() string {
	return d.v.Get("cookie").String()
}

func (d jsDocument) SetCookie(line string) {
	d.v.Set("cookie", line)
}

// JSBrowser implements Browser over the wasm host's window object.
type JSBrowser struct {
	global js.Value
}

func NewJSBrowser() *JSBrowser {
	return &JSBrowser{global: js.Global()}
}

func (b *JSBrowser) Document() (session.Document, bool) {
	doc := b.global.Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil, false
	}
	return jsDocument{v: doc}, true
}

func (b *JSBrowser) Location() *url.URL {
	location := b.global.Get("location")
	if location.IsUndefined() {
		return nil
	}

	u, err := url.Parse(location.Get("href").String())
	if err != nil {
		return nil
	}
	return u
}

func (b *JSBrowser) Navigate(target string) {
	b.global.Get("location").Set("href", target)
}

func (b *JSBrowser) ReplaceHistory(target string) {
	b.global.Get("history").Call("replaceState", js.Null(), "", target)
}

//go:build js && wasm

// Command session-guard is the WebAssembly build of the client session guard. The host page
// declares window.volterydeGate = {appId, environment, identityProviderUrl} before loading it.
// The guard state is mirrored to <html data-session-state>, and window.volterydeLogout()
// ends the session.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"volteryde-gate/internal/guard"
	"volteryde-gate/internal/logout"
	"volteryde-gate/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	settings := js.Global().Get("volterydeGate")
	if settings.IsUndefined() || settings.IsNull() {
		logger.Error("window.volterydeGate is not defined")
		return
	}

	cfg, err := guard.Settings{
		AppID:               stringField(settings, "appId"),
		Environment:         stringField(settings, "environment"),
		IdentityProviderURL: stringField(settings, "identityProviderUrl"),
	}.Validate()
	if err != nil {
		logger.Error("invalid window.volterydeGate", "error", err)
		return
	}

	browser := guard.NewJSBrowser()

	g := guard.New(cfg.AppID, cfg.Resolver, cfg.Cookies,
		guard.WithLogger(logger),
		guard.WithObserver(func(s guard.State) {
			js.Global().Get("document").Get("documentElement").Call("setAttribute", "data-session-state", s.String())
		}),
	)

	coordinator := logout.New(cfg.Resolver)
	js.Global().Set("volterydeLogout", js.FuncOf(func(this js.Value, args []js.Value) any {
		doc, ok := browser.Document()
		if !ok {
			return nil
		}
		coordinator.Logout(session.NewDocumentJar(doc, cfg.Cookies, nil), browser)
		return nil
	}))

	g.Mount(browser)

	select {}
}

// stringField is empty unless the property holds a string.
func stringField(v js.Value, name string) string {
	field := v.Get(name)
	if field.Type() != js.TypeString {
		return ""
	}
	return field.String()
}

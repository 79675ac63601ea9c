package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"volteryde-gate/internal/middlewares"
	"volteryde-gate/internal/session"
)

// GETLoginHandler hands a client-rendered page the identity provider URL to send the
// user to. The return target comes from ?rd=, then the Referer, then the site root.
func GETLoginHandler(ctx *middlewares.AppContext) {
	if credential, ok := session.ReadCookie(ctx.Request); ok {
		if _, err := session.Validate(credential, ctx.Now()); err == nil {
			ctx.Logger.Debug("User already authenticated")
			ctx.SetJSONStatus(http.StatusOK, "ok")
			return
		}
	}

	redirectTo := ctx.Request.URL.Query().Get("rd")
	if redirectTo == "" {
		redirectTo = ctx.Request.Header.Get("Referer")
		if redirectTo == "" {
			redirectTo = "/"
		}
	}

	returnTo := resolveReturnURL(middlewares.RequestURL(ctx.Request), redirectTo)

	ctx.Logger.Debug("Redirecting to identity provider", "return_to", returnTo)

	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":       "redirect_required",
		"redirect_url": ctx.Gate.LoginURL(returnTo),
	})
}

// resolveReturnURL makes target absolute against origin. Targets on another host fall
// back to the origin root.
func resolveReturnURL(origin *url.URL, target string) string {
	root := &url.URL{Scheme: origin.Scheme, Host: origin.Host, Path: "/"}

	ref, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return root.String()
	}

	resolved := origin.ResolveReference(ref)
	if resolved.Scheme != origin.Scheme || !strings.EqualFold(resolved.Host, origin.Host) {
		return root.String()
	}

	resolved.Fragment = ""
	return resolved.String()
}

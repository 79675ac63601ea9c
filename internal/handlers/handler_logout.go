package handlers

import (
	"net/http"

	"volteryde-gate/internal/logout"
	"volteryde-gate/internal/middlewares"
	"volteryde-gate/internal/session"
)

// LogoutHandler clears the session cookie and sends the browser to the identity provider.
func LogoutHandler(ctx *middlewares.AppContext) {
	_, hadSession := session.ReadCookie(ctx.Request)

	ctx.Logout.Logout(ctx.Jar(), logout.ResponseNavigator{
		W:      ctx.Response,
		R:      ctx.Request,
		Status: http.StatusFound,
	})

	ctx.Logger.Info("User logged out", "app", ctx.Gate.AppID(), "had_session", hadSession)
}

package handlers

import (
	"net/http"

	"volteryde-gate/internal/middlewares"
	"volteryde-gate/internal/version"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"version": version.GetVersion(),
	})
}

package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"volteryde-gate/internal/config"
	"volteryde-gate/internal/gate"
	"volteryde-gate/internal/logout"
	"volteryde-gate/internal/session"
)

type AppContext struct {
	context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Gate    *gate.Gate
	Logout  *logout.Coordinator
	Cookies session.CookieOptions
	Clock   func() time.Time

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:  r.Context(),
				Config:   baseCtx.Config,
				Logger:   baseCtx.Logger,
				Gate:     baseCtx.Gate,
				Logout:   baseCtx.Logout,
				Cookies:  baseCtx.Cookies,
				Clock:    baseCtx.Clock,
				Request:  r,
				Response: w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, g *gate.Gate, coordinator *logout.Coordinator) *AppContext {
	return &AppContext{
		Context: ctx,
		Config:  cfg,
		Logger:  logger,
		Gate:    g,
		Logout:  coordinator,
		Cookies: cfg.CookieOptions(),
		Clock:   time.Now,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

// Jar reads and writes the session cookie on the current request/response pair.
func (ctx *AppContext) Jar() *session.HeaderJar {
	return session.NewHeaderJar(ctx.Response, ctx.Request, ctx.Cookies)
}

func (ctx *AppContext) Now() time.Time {
	if ctx.Clock == nil {
		return time.Now()
	}
	return ctx.Clock()
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}

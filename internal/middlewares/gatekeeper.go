package middlewares

import (
	"net/http"

	"volteryde-gate/internal/gate"
	"volteryde-gate/internal/metrics"
	"volteryde-gate/internal/session"
)

// EdgeGatekeeper evaluates every request against the session gate before it reaches the
// application. Redirects are temporary so a later request re-evaluates.
func EdgeGatekeeper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil || appCtx.Gate == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		jar := session.NewHeaderJar(w, r, appCtx.Cookies)
		credential, ok := jar.Get()

		decision := appCtx.Gate.Evaluate(gate.Request{
			URL:           RequestURL(r),
			Credential:    credential,
			HasCredential: ok,
		})

		appID := appCtx.Gate.AppID()
		metrics.GateDecisionsTotal.WithLabelValues(appID, decision.Kind.String()).Inc()

		if decision.Reason != nil {
			metrics.CredentialRejectionsTotal.WithLabelValues(appID, metrics.RejectionReason(decision.Reason)).Inc()
		}

		if !decision.Apply(jar) {
			next.ServeHTTP(w, r)
			return
		}

		switch decision.Kind {
		case gate.IssueCredentialAndRedirect:
			appCtx.Logger.Info("session established from sso callback", "app", appID, "path", r.URL.Path)
		case gate.ClearAndRedirectToLogin:
			appCtx.Logger.Info("session credential rejected", "app", appID, "path", r.URL.Path, "reason", decision.Reason)
		default:
			appCtx.Logger.Debug("no session, redirecting to login", "app", appID, "path", r.URL.Path)
		}

		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, decision.Location, http.StatusTemporaryRedirect)
	})
}

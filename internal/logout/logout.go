package logout

import (
	"net/http"

	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/gate"
	"volteryde-gate/internal/session"
)

type Navigator interface {
	Navigate(target string)
}

// Coordinator ends a session: the cookie goes, then the user is sent to the identity provider.
type Coordinator struct {
	resolver endpoints.Resolver
}

func New(resolver endpoints.Resolver) *Coordinator {
	return &Coordinator{resolver: resolver}
}

func (c *Coordinator) URL() string {
	return gate.LogoutURL(c.resolver)
}

// Logout never asks for confirmation. With no cookie present only the navigation happens.
func (c *Coordinator) Logout(jar session.Jar, nav Navigator) {
	if _, ok := jar.Get(); ok {
		jar.Clear()
	}
	nav.Navigate(c.URL())
}

// ResponseNavigator turns a navigation into an HTTP redirect.
type ResponseNavigator struct {
	W      http.ResponseWriter
	R      *http.Request
	Status int
}

func (n ResponseNavigator) Navigate(target string) {
	status := n.Status
	if status == 0 {
		status = http.StatusFound
	}
	http.Redirect(n.W, n.R, target, status)
}

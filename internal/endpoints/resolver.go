package endpoints

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

var ErrUnknownEnvironment = errors.New("unknown environment")

// DefaultIdentityProviderURLs are used for any environment the config does not override.
var DefaultIdentityProviderURLs = map[Environment]string{
	EnvironmentDevelopment: "http://localhost:3001",
	EnvironmentStaging:     "https://auth.staging.volteryde.com",
	EnvironmentProduction:  "https://auth.volteryde.com",
}

// Resolver returns the base URL of the central identity provider.
type Resolver interface {
	Resolve() *url.URL
}

func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction:
		return env, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}

// StaticResolver always resolves to the same base URL.
type StaticResolver struct {
	base *url.URL
}

// NewResolver picks the identity provider URL for env, preferring urls over the defaults.
func NewResolver(env Environment, urls map[Environment]string) (*StaticResolver, error) {
	raw, ok := urls[env]
	if !ok || raw == "" {
		raw, ok = DefaultIdentityProviderURLs[env]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
		}
	}

	return NewStaticResolver(raw)
}

func NewStaticResolver(raw string) (*StaticResolver, error) {
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider url %q: %w", raw, err)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("identity provider url %q must have http or https scheme", raw)
	}

	if base.Host == "" {
		return nil, fmt.Errorf("identity provider url %q has no host", raw)
	}

	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawQuery = ""
	base.Fragment = ""

	return &StaticResolver{base: base}, nil
}

// Resolve returns a copy so callers may mutate the result.
func (r *StaticResolver) Resolve() *url.URL {
	u := *r.base
	return &u
}

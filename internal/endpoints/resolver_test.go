package endpoints

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Environment
		wantErr bool
	}{
		{name: "development", input: "development", want: EnvironmentDevelopment},
		{name: "staging mixed case", input: "Staging", want: EnvironmentStaging},
		{name: "production padded", input: " production ", want: EnvironmentProduction},
		{name: "unknown", input: "qa", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvironment(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownEnvironment))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResolver_PrefersConfiguredURL(t *testing.T) {
	r, err := NewResolver(EnvironmentStaging, map[Environment]string{
		EnvironmentStaging: "https://sso.example.com/",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://sso.example.com", r.Resolve().String())
}

func TestNewResolver_FallsBackToDefault(t *testing.T) {
	r, err := NewResolver(EnvironmentProduction, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultIdentityProviderURLs[EnvironmentProduction], r.Resolve().String())
}

func TestNewResolver_UnknownEnvironment(t *testing.T) {
	_, err := NewResolver(Environment("qa"), nil)
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestNewStaticResolver_RejectsBadURLs(t *testing.T) {
	for _, raw := range []string{"ftp://sso.example.com", "not a url", "https://"} {
		_, err := NewStaticResolver(raw)
		assert.Error(t, err, raw)
	}
}

func TestStaticResolver_ResolveReturnsCopy(t *testing.T) {
	r, err := NewStaticResolver("https://sso.example.com/base?x=1")
	require.NoError(t, err)

	first := r.Resolve()
	first.Path = "/mutated"

	assert.Equal(t, "https://sso.example.com/base", r.Resolve().String())
}

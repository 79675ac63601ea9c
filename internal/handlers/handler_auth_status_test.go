package handlers

import (
	"net/http"
	"testing"

	"volteryde-gate/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthStatusHandler_ShouldReturnUnauthorizedWithoutCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "https://host/api/auth/status")

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "authenticated", false)
	tc.AssertJSONString(t, "reason", "missing")
}

func TestAuthStatusHandler_ShouldReturnUnauthorizedForExpiredCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "https://host/api/auth/status")
	tc.WithCookie(testutil.ExpiredCredential)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "authenticated", false)
	tc.AssertJSONString(t, "reason", "expired")

	_, wrote := tc.SessionCookie()
	assert.False(t, wrote, "status check must not modify the cookie")
}

func TestAuthStatusHandler_ShouldReturnUnauthorizedForMalformedCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "https://host/api/auth/status")
	tc.WithCookie("not-a-token")

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "reason", "malformed")
}

func TestAuthStatusHandler_ShouldReturnExpiryForValidCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "https://host/api/auth/status")
	tc.WithCookie(testutil.ValidCredential)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", true)
	tc.AssertJSONString(t, "expires_at", "2286-11-20T17:46:39Z")

	response := tc.GetJSONResponse(t)
	assert.NotContains(t, response, "reason")
}

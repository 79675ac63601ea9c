package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrExpiredCredential   = errors.New("expired credential")
)

// payloadParser is only used for segment decoding; signatures are never checked here.
var payloadParser = jwt.NewParser(jwt.WithPaddingAllowed())

type Claims struct {
	ExpiresAt time.Time
}

// Decode reads the payload segment of a three-segment credential and extracts its exp claim.
// The header and signature segments are not inspected.
func Decode(credential string) (*Claims, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}

	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedCredential, len(parts))
	}

	payload, err := payloadParser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not base64url: %v", ErrMalformedCredential, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload is not a json object: %v", ErrMalformedCredential, err)
	}

	exp, err := expiryMillis(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	return &Claims{ExpiresAt: time.UnixMilli(exp)}, nil
}

// expiryMillis reads exp as seconds since epoch, fractions included, and scales it to
// milliseconds. A zero exp counts as absent.
func expiryMillis(claims jwt.MapClaims) (int64, error) {
	raw, ok := claims["exp"]
	if !ok || raw == nil {
		return 0, errors.New("exp claim is missing")
	}

	exp, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("exp claim has type %T, want a number", raw)
	}

	if exp == 0 {
		return 0, errors.New("exp claim is missing")
	}

	ms := exp * 1000
	switch {
	case ms >= math.MaxInt64:
		return math.MaxInt64, nil
	case ms <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(ms), nil
}

// Expired compares at millisecond precision; a credential expiring exactly now is expired.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt.UnixMilli() <= now.UnixMilli()
}

// Validate classifies a credential into one of the error taxonomy members, or nil when usable.
func Validate(credential string, now time.Time) (*Claims, error) {
	claims, err := Decode(credential)
	if err != nil {
		return nil, err
	}

	if claims.Expired(now) {
		return claims, fmt.Errorf("%w: expired at %s", ErrExpiredCredential, claims.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return claims, nil
}

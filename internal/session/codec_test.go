package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credentialWithPayload(payload string) string {
	return "abc." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		credential string
		wantErr    error
		wantExp    int64
	}{
		{
			name:       "far future exp",
			credential: "abc.eyJleHAiOjk5OTk5OTk5OTl9.sig",
			wantExp:    9999999999,
		},
		{
			name:       "past exp",
			credential: "abc.eyJleHAiOjEwMH0.sig",
			wantExp:    100,
		},
		{
			name:       "padded payload",
			credential: "abc." + base64.URLEncoding.EncodeToString([]byte(`{"exp": 1700000000}`)) + ".sig",
			wantExp:    1700000000,
		},
		{
			name:       "extra claims ignored",
			credential: credentialWithPayload(`{"sub":"driver-7","exp":1700000000,"roles":["x"]}`),
			wantExp:    1700000000,
		},
		{
			name:       "empty",
			credential: "",
			wantErr:    ErrMissingCredential,
		},
		{
			name:       "two segments",
			credential: "abc.eyJleHAiOjEwMH0",
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "payload not base64",
			credential: "abc.!!!.sig",
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "payload not json",
			credential: credentialWithPayload("not json"),
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "exp missing",
			credential: credentialWithPayload(`{"sub":"x"}`),
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "exp is a string",
			credential: credentialWithPayload(`{"exp":"tomorrow"}`),
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "exp is null",
			credential: credentialWithPayload(`{"exp":null}`),
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "exp is zero",
			credential: credentialWithPayload(`{"exp":0}`),
			wantErr:    ErrMalformedCredential,
		},
		{
			name:       "payload is an array",
			credential: credentialWithPayload(`[1,2,3]`),
			wantErr:    ErrMalformedCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(tt.credential)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantExp, claims.ExpiresAt.Unix())
		})
	}
}

func TestValidate(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	_, err := Validate(credentialWithPayload(`{"exp":1700000001}`), now)
	assert.NoError(t, err)

	_, err = Validate(credentialWithPayload(`{"exp":1700000000}`), now)
	assert.ErrorIs(t, err, ErrExpiredCredential, "exp equal to now is expired")

	_, err = Validate(credentialWithPayload(`{"exp":1699999999}`), now)
	assert.ErrorIs(t, err, ErrExpiredCredential)

	_, err = Validate("garbage", now)
	assert.ErrorIs(t, err, ErrMalformedCredential)
}

func TestClaimsExpired_MillisecondPrecision(t *testing.T) {
	claims := &Claims{ExpiresAt: time.Unix(1_700_000_000, 0)}

	assert.False(t, claims.Expired(time.Unix(1_699_999_999, 999_000_000)))
	assert.True(t, claims.Expired(time.Unix(1_700_000_000, 0)))
	assert.True(t, claims.Expired(time.Unix(1_700_000_000, 1_000_000)))
}

func TestValidate_FractionalExp(t *testing.T) {
	credential := credentialWithPayload(`{"exp":1000.9}`)

	claims, err := Validate(credential, time.Unix(1000, 500_000_000))
	require.NoError(t, err)
	assert.Equal(t, int64(1000900), claims.ExpiresAt.UnixMilli())

	_, err = Validate(credential, time.Unix(1000, 899_000_000))
	assert.NoError(t, err)

	_, err = Validate(credential, time.Unix(1001, 0))
	assert.ErrorIs(t, err, ErrExpiredCredential)
}

func TestDecode_ExpBeyondInt64Millis(t *testing.T) {
	claims, err := Decode(credentialWithPayload(`{"exp":1e300}`))
	require.NoError(t, err)
	assert.False(t, claims.Expired(time.Unix(9_999_999_999, 0)))
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("alice@example.com", 42, "CUSTOMER", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "CUSTOMER", claims.Role)
}

func TestParseTokenFailuresCollapse(t *testing.T) {
	token, err := GenerateToken("alice@example.com", 42, "CUSTOMER", "secret", time.Hour)
	require.NoError(t, err)

	expired, err := GenerateToken("alice@example.com", 42, "CUSTOMER", "secret", -time.Minute)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"wrong secret": token,
		"expired":      expired,
		"garbage":      "not.a.token",
	} {
		secret := "secret"
		if name == "wrong secret" {
			secret = "other-secret"
		}
		_, err := ParseToken(tok, secret)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestTokenDigest(t *testing.T) {
	digest := TokenDigest("some-token")
	require.Len(t, digest, 64)
	require.Equal(t, digest, TokenDigest("some-token"))
	require.NotEqual(t, digest, TokenDigest("other-token"))
}

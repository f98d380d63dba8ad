package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAccessToken(t *testing.T) {
	_, err := IssueAccessToken(1, "", time.Minute)
	require.Error(t, err)

	tok, err := IssueAccessToken(5, "s", time.Minute)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, "5", claims.Subject)
}

func TestVerifyAccessToken(t *testing.T) {
	_, err := VerifyAccessToken("abc", "")
	require.Error(t, err)

	_, err = VerifyAccessToken("invalid", "s")
	require.Error(t, err)

	// alg=none 必須被拒絕
	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone, "s")
	require.Error(t, err)

	tok, err := IssueAccessToken(3, "s", time.Minute)
	require.NoError(t, err)
	claims, err := VerifyAccessToken(tok, "s")
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	tok, err := IssueAccessToken(1, "right", time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken(tok, "wrong")
	require.Error(t, err)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	tok, err := IssueAccessToken(1, "s", -time.Second)
	require.NoError(t, err)
	_, err = VerifyAccessToken(tok, "s")
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

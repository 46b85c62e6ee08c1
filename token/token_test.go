package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	tok, err := svc.Generate(1, "alice")
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 3)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
}

func TestWireFormat(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewService(secret)

	tok, err := svc.Generate(42, "bob")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	var header map[string]string
	require.NoError(t, json.Unmarshal(headerJSON, &header))
	assert.Equal(t, map[string]string{"alg": "HS256", "typ": "JWT"}, header)

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(payloadJSON, &payload))
	assert.Equal(t, float64(42), payload["userId"])
	assert.Equal(t, "bob", payload["username"])
	assert.Contains(t, payload, "iat")
	assert.NotContains(t, payload, "exp")

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(parts[0] + "." + parts[1]))
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), parts[2])
}

func TestSigningIsDeterministic(t *testing.T) {
	// Signing introduces no randomness: a fixed claim set and secret always
	// produce the same token. Two Generate calls differ only through iat.
	secret := []byte("test-secret")

	fixed := &Claims{
		UserID:   7,
		Username: "carol",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Unix(1700000000, 0)),
		},
	}
	a, err := jwt.NewWithClaims(jwt.SigningMethodHS256, fixed).SignedString(secret)
	require.NoError(t, err)
	b, err := jwt.NewWithClaims(jwt.SigningMethodHS256, fixed).SignedString(secret)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	claims, err := NewService(secret).Verify(a)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "carol", claims.Username)
	assert.Equal(t, int64(1700000000), claims.IssuedAt.Unix())
}

func tamper(segment string) string {
	replacement := byte('A')
	if segment[0] == 'A' {
		replacement = 'B'
	}
	return string(replacement) + segment[1:]
}

func TestVerifyRejectsTampering(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	tok, err := svc.Generate(1, "alice")
	require.NoError(t, err)
	parts := strings.Split(tok, ".")

	tamperedPayload := parts[0] + "." + tamper(parts[1]) + "." + parts[2]
	_, err = svc.Verify(tamperedPayload)
	assert.ErrorIs(t, err, ErrInvalidToken)

	tamperedSig := parts[0] + "." + parts[1] + "." + tamper(parts[2])
	_, err = svc.Verify(tamperedSig)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedShapes(t *testing.T) {
	svc := NewService([]byte("test-secret"))

	for _, tok := range []string{
		"",
		"justonesegment",
		"two.segments",
		"a.b.c.d",
		"..",
		"...",
	} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewService([]byte("secret-a")).Generate(1, "alice")
	require.NoError(t, err)

	_, err = NewService([]byte("secret-b")).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":1,"username":"alice","iat":1700000000}`))

	svc := NewService([]byte("test-secret"))
	_, err := svc.Verify(header + "." + payload + ".")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

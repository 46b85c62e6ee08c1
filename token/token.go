// Package token issues and verifies the signed bearer credentials used by
// the HTTP API. Tokens are compact HS256 JWTs carrying the user identity at
// issuance time; verification is stateless and never consults the user store.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub-dev/userhub/util/common"
)

// ErrInvalidToken is returned for every verification failure. The cause
// (absent, malformed, tampered) is deliberately not distinguished.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload embedded in a token: the user id and username as
// they were at issuance, plus the issued-at timestamp. No expiry is set, so
// a token stays valid for as long as the signing secret does.
type Claims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide secret.
type Service struct {
	secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret}
}

// Generate creates a signed token for the given user. Output is the standard
// three-segment form: base64url header, payload and HMAC-SHA256 signature
// joined by dots, without padding.
func (s *Service) Generate(userID int, username string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses a presented token, checks its signature and returns the
// claims exactly as issued. Signature comparison inside the HMAC method is
// constant-time. Claims are not checked against the current store state;
// a token issued for a since-deleted user still verifies.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewErrorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

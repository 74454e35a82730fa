package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const ContextKeyUser = "user"

var ErrEmptySecret = errors.New("jwt signing secret is empty")

type JWTClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens with a fixed secret and lifetime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Secret() []byte {
	return t.secret
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

func (t *TokenIssuer) CreateJWTToken(userID string) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrEmptySecret
	}

	now := t.now()
	claims := &JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) ParseJWTToken(tokenString string) (*JWTClaims, error) {
	if len(t.secret) == 0 {
		return nil, ErrEmptySecret
	}

	claims := &JWTClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// ExtractTokenUser returns the user id of the principal stored by the auth middleware.
func ExtractTokenUser(c echo.Context) string {
	user, ok := c.Get(ContextKeyUser).(*jwt.Token)
	if !ok || !user.Valid {
		return ""
	}

	claims, ok := user.Claims.(*JWTClaims)
	if !ok {
		return ""
	}

	return claims.UserID
}

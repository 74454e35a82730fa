package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/koffe-supply/koffe-be/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithAuth(t *testing.T, tokens *utils.TokenIssuer, enforce bool, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/secure", func(c echo.Context) error {
		return c.String(http.StatusOK, utils.ExtractTokenUser(c))
	}, JWTAuth(tokens, enforce))

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	token, err := tokens.CreateJWTToken("65a0000000000000000000aa")
	require.NoError(t, err)

	rec := serveWithAuth(t, tokens, true, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "65a0000000000000000000aa", rec.Body.String())
}

func TestJWTAuthRejects(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)

	expired, err := utils.NewTokenIssuer("secret", -time.Minute).CreateJWTToken("u1")
	require.NoError(t, err)
	foreign, err := utils.NewTokenIssuer("other-secret", time.Hour).CreateJWTToken("u1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		bearer  string
		message string
	}{
		{name: "missing", bearer: "", message: "Missing token"},
		{name: "garbage", bearer: "abc.def.ghi", message: "Invalid token"},
		{name: "expired", bearer: expired, message: "Invalid token"},
		{name: "wrong secret", bearer: foreign, message: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWithAuth(t, tokens, true, tt.bearer)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestJWTAuthDisabled(t *testing.T) {
	rec := serveWithAuth(t, utils.NewTokenIssuer("secret", time.Hour), false, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestJWTAuthRejectsTokensWhenSecretIsEmpty(t *testing.T) {
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.JWTClaims{UserID: "intruder"}).SignedString([]byte(""))
	require.NoError(t, err)

	rec := serveWithAuth(t, utils.NewTokenIssuer("", time.Hour), true, forged)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.NotContains(t, rec.Body.String(), "intruder")
}

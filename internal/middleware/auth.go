package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/koffe-supply/koffe-be/pkg/utils"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// JWTAuth verifies the bearer token issued by tokens. With enforce false every
// request passes through unchecked. An empty signing key rejects all requests.
func JWTAuth(tokens *utils.TokenIssuer, enforce bool) echo.MiddlewareFunc {
	if !enforce {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	if len(tokens.Secret()) == 0 {
		log.Error().Str("component", "JWTAuth").Msg("empty signing key, rejecting every token")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
			}
		}
	}

	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:    tokens.Secret(),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    utils.ContextKeyUser,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(utils.JWTClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var missing *echojwt.TokenExtractionError
			if errors.As(err, &missing) {
				return response.WriteErrorResponse(c, errs.ErrMissingToken, nil)
			}

			log.Ctx(c.Request().Context()).Info().Err(err).Str("component", "JWTAuth").Msg("rejected token")
			return response.WriteErrorResponse(c, errs.ErrInvalidToken, nil)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(withPrincipal(next))
	}
}

// withPrincipal tags the request logger with the authenticated user id.
func withPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := log.Ctx(ctx).With().Str("user_id", utils.ExtractTokenUser(c)).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(ctx)))

		return next(c)
	}
}

package middleware

import (
	stderrors "errors"
	"net/http"

	"talentsched/core/constants"
	"talentsched/core/controller"
	"talentsched/core/errors"
	"talentsched/core/logger"
	"talentsched/core/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware validates the bearer token and stores its claims on the
// request context under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "missing or malformed authorization header")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Warn("Middleware:Auth:ValidateToken", "error", err, "path", c.Path())
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return controller.NewErrorResponse(http.StatusUnauthorized,
						errors.ErrTokenExpired, "token expired")
				}
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "invalid token")
			}

			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "token scope not allowed")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

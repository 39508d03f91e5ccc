// Package middleware provides the middleware for the Echo instance
package middleware

import (
	"net/http"
	"strings"

	"github.com/dealsdray/empdirapi/internal/config"
	"github.com/dealsdray/empdirapi/internal/service"
	"github.com/dealsdray/empdirapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// CtxUserNameKey is the context key under which the authenticated
// userName is stored.
const CtxUserNameKey = "user_name"

// AuthMiddleware verifies the session token from the Authorization header.
// The header may carry the raw token or the `Bearer <token>` form.
func AuthMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return response.ErrorResponse(c, http.StatusForbidden, response.AuthorizationException, "Missing Authorization header")
			}

			tokenString := auth
			if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}

			claims, err := service.VerifyToken(cfg.JWTSecret, tokenString)
			if err != nil {
				return response.ErrorResponse(c, http.StatusForbidden, response.AuthorizationException, "Invalid or expired token")
			}

			c.Set(CtxUserNameKey, claims.UserName)

			return next(c)
		}
	}
}

package middleware

import (
	"context"

	"makerskills-api/core/cache"
	"makerskills-api/core/constants"
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
	base  controller.BaseController
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{
		cache: c,
		base:  controller.NewBaseController(),
	}
}

// AuthMiddleware guards mutating routes. It rejects missing or malformed
// Authorization headers before any cryptographic work, verifies signature
// and expiry, checks the blacklist, and attaches the decoded claims to the
// request context for downstream handlers.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return m.base.Unauthorized(errors.ErrMissingAuthorizationHeader, "missing or malformed authorization header")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", err)
				return m.base.Unauthorized(errors.ErrUnauthorized, "invalid or expired token")
			}

			if m.cache != nil {
				blacklisted, errCheck := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if errCheck != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", errCheck)
					return m.base.InternalServerError(errors.ErrInternalServer, "failed to verify token")
				}
				if blacklisted {
					return m.base.Unauthorized(errors.ErrUnauthorized, "invalid or expired token")
				}
			}

			c.Set(constants.ContextTokenData, claims)

			ctx, cancel := context.WithTimeout(c.Request().Context(), constants.DefaultRequestTimeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

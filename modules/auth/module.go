package auth

import (
	"context"

	"makerskills-api/core/cache"
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/modules/auth/controller"
	"makerskills-api/modules/auth/repository"
	"makerskills-api/modules/auth/router"
	"makerskills-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and seeds default credentials on an empty
// users table.
func Init(e *echo.Echo, db database.Database, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(&db)
	authService := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(authService)

	service.SeedDefaultUsers(context.Background(), repo)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}

package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	authRoutes := e.Group("/auth")

	authRoutes.POST("/login", r.AuthController.Login)
	authRoutes.POST("/logout", r.AuthController.Logout, mw.AuthMiddleware())
	authRoutes.GET("/me", r.AuthController.GetMe, mw.AuthMiddleware())

	authRoutes.POST("/users", r.AuthController.CreateUser, mw.AuthMiddleware())
	authRoutes.PATCH("/users/:id/password", r.AuthController.UpdatePassword, mw.AuthMiddleware())
	authRoutes.DELETE("/users/:id", r.AuthController.DeleteUser, mw.AuthMiddleware())
}

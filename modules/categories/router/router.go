package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/categories/controller"

	"github.com/labstack/echo/v4"
)

type CategoryRouter struct {
	CategoryController *controller.CategoryController
}

func NewCategoryRouter(categoryController *controller.CategoryController) *CategoryRouter {
	return &CategoryRouter{CategoryController: categoryController}
}

func (r *CategoryRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	categoryRoutes := e.Group("/categories")

	categoryRoutes.GET("", r.CategoryController.FindAll)
	categoryRoutes.GET("/:id", r.CategoryController.FindOne)
	categoryRoutes.POST("", r.CategoryController.Create, mw.AuthMiddleware())
	categoryRoutes.PATCH("/:id", r.CategoryController.Update, mw.AuthMiddleware())
	categoryRoutes.DELETE("/:id", r.CategoryController.Remove, mw.AuthMiddleware())
}

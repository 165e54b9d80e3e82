package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/blogs/controller"

	"github.com/labstack/echo/v4"
)

type BlogRouter struct {
	BlogController *controller.BlogController
}

func NewBlogRouter(blogController *controller.BlogController) *BlogRouter {
	return &BlogRouter{BlogController: blogController}
}

func (r *BlogRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	blogRoutes := e.Group("/blogs")

	blogRoutes.GET("", r.BlogController.FindAll)
	blogRoutes.GET("/slug/:slug", r.BlogController.FindBySlug)
	blogRoutes.GET("/:id", r.BlogController.FindOne)
	blogRoutes.POST("", r.BlogController.Create, mw.AuthMiddleware())
	blogRoutes.PATCH("/:id", r.BlogController.Update, mw.AuthMiddleware())
	blogRoutes.DELETE("/:id", r.BlogController.Remove, mw.AuthMiddleware())
}

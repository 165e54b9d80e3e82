package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/products/controller"

	"github.com/labstack/echo/v4"
)

type ProductRouter struct {
	ProductController *controller.ProductController
}

func NewProductRouter(productController *controller.ProductController) *ProductRouter {
	return &ProductRouter{ProductController: productController}
}

func (r *ProductRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	productRoutes := e.Group("/products")

	productRoutes.GET("", r.ProductController.FindAll)
	productRoutes.GET("/:id", r.ProductController.FindOne)
	productRoutes.POST("", r.ProductController.Create, mw.AuthMiddleware())
	productRoutes.PATCH("/:id", r.ProductController.Update, mw.AuthMiddleware())
	productRoutes.DELETE("/:id", r.ProductController.Remove, mw.AuthMiddleware())
}

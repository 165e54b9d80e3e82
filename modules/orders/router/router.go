package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/orders/controller"

	"github.com/labstack/echo/v4"
)

type OrderRouter struct {
	OrderController *controller.OrderController
}

func NewOrderRouter(orderController *controller.OrderController) *OrderRouter {
	return &OrderRouter{OrderController: orderController}
}

// Setup keeps checkout public; order management requires a token.
func (r *OrderRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	orderRoutes := e.Group("/orders")

	orderRoutes.POST("", r.OrderController.Create)
	orderRoutes.GET("", r.OrderController.FindAll, mw.AuthMiddleware())
	orderRoutes.GET("/:id", r.OrderController.FindOne, mw.AuthMiddleware())
	orderRoutes.PATCH("/:id", r.OrderController.Update, mw.AuthMiddleware())
	orderRoutes.DELETE("/:id", r.OrderController.Remove, mw.AuthMiddleware())
}

package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/bootcamps/controller"

	"github.com/labstack/echo/v4"
)

type BootcampRouter struct {
	BootcampController *controller.BootcampController
}

func NewBootcampRouter(bootcampController *controller.BootcampController) *BootcampRouter {
	return &BootcampRouter{BootcampController: bootcampController}
}

func (r *BootcampRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	bootcampRoutes := e.Group("/bootcamps")

	bootcampRoutes.GET("", r.BootcampController.FindAll)
	bootcampRoutes.GET("/:id", r.BootcampController.FindOne)
	bootcampRoutes.POST("", r.BootcampController.Create, mw.AuthMiddleware())
	bootcampRoutes.PATCH("/:id", r.BootcampController.Update, mw.AuthMiddleware())
	bootcampRoutes.DELETE("/:id", r.BootcampController.Remove, mw.AuthMiddleware())
}

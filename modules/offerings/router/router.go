package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/offerings/controller"

	"github.com/labstack/echo/v4"
)

type OfferingRouter struct {
	OfferingController *controller.OfferingController
}

func NewOfferingRouter(offeringController *controller.OfferingController) *OfferingRouter {
	return &OfferingRouter{OfferingController: offeringController}
}

func (r *OfferingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	serviceRoutes := e.Group("/services")

	serviceRoutes.GET("", r.OfferingController.FindAll)
	serviceRoutes.GET("/:id", r.OfferingController.FindOne)
	serviceRoutes.POST("", r.OfferingController.Create, mw.AuthMiddleware())
	serviceRoutes.PATCH("/:id", r.OfferingController.Update, mw.AuthMiddleware())
	serviceRoutes.DELETE("/:id", r.OfferingController.Remove, mw.AuthMiddleware())
}

package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/partners/controller"

	"github.com/labstack/echo/v4"
)

type PartnerRouter struct {
	PartnerController *controller.PartnerController
}

func NewPartnerRouter(partnerController *controller.PartnerController) *PartnerRouter {
	return &PartnerRouter{PartnerController: partnerController}
}

func (r *PartnerRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	partnerRoutes := e.Group("/partners")

	partnerRoutes.GET("", r.PartnerController.FindAll)
	partnerRoutes.GET("/:id", r.PartnerController.FindOne)
	partnerRoutes.POST("", r.PartnerController.Create, mw.AuthMiddleware())
	partnerRoutes.PATCH("/:id", r.PartnerController.Update, mw.AuthMiddleware())
	partnerRoutes.DELETE("/:id", r.PartnerController.Remove, mw.AuthMiddleware())
}

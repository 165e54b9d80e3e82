package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/workshops/controller"

	"github.com/labstack/echo/v4"
)

type WorkshopRouter struct {
	WorkshopController *controller.WorkshopController
}

func NewWorkshopRouter(workshopController *controller.WorkshopController) *WorkshopRouter {
	return &WorkshopRouter{WorkshopController: workshopController}
}

func (r *WorkshopRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	workshopRoutes := e.Group("/workshops")

	workshopRoutes.GET("", r.WorkshopController.FindAll)
	workshopRoutes.GET("/:id", r.WorkshopController.FindOne)
	workshopRoutes.POST("", r.WorkshopController.Create, mw.AuthMiddleware())
	workshopRoutes.PATCH("/:id", r.WorkshopController.Update, mw.AuthMiddleware())
	workshopRoutes.DELETE("/:id", r.WorkshopController.Remove, mw.AuthMiddleware())
}

package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/events/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

// Setup registers catalog reads publicly; mutations require a token.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	eventRoutes := e.Group("/events")

	eventRoutes.GET("", r.EventController.FindAll)
	eventRoutes.GET("/:id", r.EventController.FindOne)
	eventRoutes.POST("", r.EventController.Create, mw.AuthMiddleware())
	eventRoutes.PATCH("/:id", r.EventController.Update, mw.AuthMiddleware())
	eventRoutes.DELETE("/:id", r.EventController.Remove, mw.AuthMiddleware())
}

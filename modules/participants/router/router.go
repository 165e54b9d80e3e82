package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/participants/controller"

	"github.com/labstack/echo/v4"
)

type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{ParticipantController: participantController}
}

// Setup keeps registration public (it backs the signup form) and guards
// everything that reads or mutates existing records.
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	participantRoutes := e.Group("/participants")

	participantRoutes.POST("", r.ParticipantController.Register)
	participantRoutes.GET("", r.ParticipantController.FindAll, mw.AuthMiddleware())
	participantRoutes.GET("/event/:eventId", r.ParticipantController.FindByEvent, mw.AuthMiddleware())
	participantRoutes.GET("/email/:email/events", r.ParticipantController.FindEventsByEmail, mw.AuthMiddleware())
	participantRoutes.GET("/:id", r.ParticipantController.FindOne, mw.AuthMiddleware())
	participantRoutes.PATCH("/:id", r.ParticipantController.Update, mw.AuthMiddleware())
	participantRoutes.DELETE("/:id", r.ParticipantController.Remove, mw.AuthMiddleware())
}

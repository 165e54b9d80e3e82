package participants

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	eventsrepo "makerskills-api/modules/events/repository"
	"makerskills-api/modules/participants/controller"
	"makerskills-api/modules/participants/repository"
	"makerskills-api/modules/participants/router"
	"makerskills-api/modules/participants/service"
	workshopsrepo "makerskills-api/modules/workshops/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewParticipantRepository(&db)
	participantService := service.NewParticipantService(
		repo,
		eventsrepo.NewEventRepository(&db),
		workshopsrepo.NewWorkshopRepository(&db),
	)
	ctrl := controller.NewParticipantController(participantService)

	router.NewParticipantRouter(ctrl).Setup(e, mw)
}

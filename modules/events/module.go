package events

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/events/controller"
	"makerskills-api/modules/events/repository"
	"makerskills-api/modules/events/router"
	"makerskills-api/modules/events/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewEventRepository(&db)
	eventService := service.NewEventService(repo)
	ctrl := controller.NewEventController(eventService, store)

	router.NewEventRouter(ctrl).Setup(e, mw)
}

package workshops

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/workshops/controller"
	"makerskills-api/modules/workshops/repository"
	"makerskills-api/modules/workshops/router"
	"makerskills-api/modules/workshops/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewWorkshopRepository(&db)
	workshopService := service.NewWorkshopService(repo)
	ctrl := controller.NewWorkshopController(workshopService, store)

	router.NewWorkshopRouter(ctrl).Setup(e, mw)
}

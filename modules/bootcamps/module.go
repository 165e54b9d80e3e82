package bootcamps

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/bootcamps/controller"
	"makerskills-api/modules/bootcamps/repository"
	"makerskills-api/modules/bootcamps/router"
	"makerskills-api/modules/bootcamps/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewBootcampRepository(&db)
	bootcampService := service.NewBootcampService(repo)
	ctrl := controller.NewBootcampController(bootcampService, store)

	router.NewBootcampRouter(ctrl).Setup(e, mw)
}

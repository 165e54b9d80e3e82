package partners

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/partners/controller"
	"makerskills-api/modules/partners/repository"
	"makerskills-api/modules/partners/router"
	"makerskills-api/modules/partners/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewPartnerRepository(&db)
	partnerService := service.NewPartnerService(repo)
	ctrl := controller.NewPartnerController(partnerService, store)

	router.NewPartnerRouter(ctrl).Setup(e, mw)
}

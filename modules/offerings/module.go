package offerings

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/modules/offerings/controller"
	"makerskills-api/modules/offerings/repository"
	"makerskills-api/modules/offerings/router"
	"makerskills-api/modules/offerings/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewOfferingRepository(&db)
	offeringService := service.NewOfferingService(repo)
	ctrl := controller.NewOfferingController(offeringService)

	router.NewOfferingRouter(ctrl).Setup(e, mw)
}

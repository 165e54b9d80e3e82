package herosection

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/herosection/controller"
	"makerskills-api/modules/herosection/repository"
	"makerskills-api/modules/herosection/router"
	"makerskills-api/modules/herosection/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewHeroSectionRepository(&db)
	heroService := service.NewHeroSectionService(repo)
	ctrl := controller.NewHeroSectionController(heroService, store)

	router.NewHeroSectionRouter(ctrl).Setup(e, mw)
}

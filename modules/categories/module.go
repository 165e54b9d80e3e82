package categories

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/modules/categories/controller"
	"makerskills-api/modules/categories/repository"
	"makerskills-api/modules/categories/router"
	"makerskills-api/modules/categories/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewCategoryRepository(&db)
	categoryService := service.NewCategoryService(repo)
	ctrl := controller.NewCategoryController(categoryService)

	router.NewCategoryRouter(ctrl).Setup(e, mw)
}

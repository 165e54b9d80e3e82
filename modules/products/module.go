package products

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/products/controller"
	"makerskills-api/modules/products/repository"
	"makerskills-api/modules/products/router"
	"makerskills-api/modules/products/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewProductRepository(&db)
	productService := service.NewProductService(repo)
	ctrl := controller.NewProductController(productService, store)

	router.NewProductRouter(ctrl).Setup(e, mw)
}

package orders

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/modules/orders/controller"
	"makerskills-api/modules/orders/repository"
	"makerskills-api/modules/orders/router"
	"makerskills-api/modules/orders/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewOrderRepository(&db)
	orderService := service.NewOrderService(repo)
	ctrl := controller.NewOrderController(orderService)

	router.NewOrderRouter(ctrl).Setup(e, mw)
}

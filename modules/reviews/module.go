package reviews

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/reviews/controller"
	"makerskills-api/modules/reviews/repository"
	"makerskills-api/modules/reviews/router"
	"makerskills-api/modules/reviews/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewReviewRepository(&db)
	reviewService := service.NewReviewService(repo)
	ctrl := controller.NewReviewController(reviewService, store)

	router.NewReviewRouter(ctrl).Setup(e, mw)
}

package blogs

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/modules/blogs/controller"
	"makerskills-api/modules/blogs/repository"
	"makerskills-api/modules/blogs/router"
	"makerskills-api/modules/blogs/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, store storage.Storage) {
	repo := repository.NewBlogRepository(&db)
	blogService := service.NewBlogService(repo)
	ctrl := controller.NewBlogController(blogService, store)

	router.NewBlogRouter(ctrl).Setup(e, mw)
}

package projects

import (
	"makerskills-api/core/database"
	"makerskills-api/core/middleware"
	"makerskills-api/modules/projects/controller"
	"makerskills-api/modules/projects/repository"
	"makerskills-api/modules/projects/router"
	"makerskills-api/modules/projects/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewProjectRepository(&db)
	projectService := service.NewProjectService(repo)
	ctrl := controller.NewProjectController(projectService)

	router.NewProjectRouter(ctrl).Setup(e, mw)
}

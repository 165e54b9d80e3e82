package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/projects/controller"

	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	ProjectController *controller.ProjectController
}

func NewProjectRouter(projectController *controller.ProjectController) *ProjectRouter {
	return &ProjectRouter{ProjectController: projectController}
}

func (r *ProjectRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	projectRoutes := e.Group("/projects")

	projectRoutes.GET("", r.ProjectController.FindAll)
	projectRoutes.GET("/:id", r.ProjectController.FindOne)
	projectRoutes.POST("", r.ProjectController.Create, mw.AuthMiddleware())
	projectRoutes.PATCH("/:id", r.ProjectController.Update, mw.AuthMiddleware())
	projectRoutes.DELETE("/:id", r.ProjectController.Remove, mw.AuthMiddleware())
}

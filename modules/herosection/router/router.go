package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/herosection/controller"

	"github.com/labstack/echo/v4"
)

type HeroSectionRouter struct {
	HeroSectionController *controller.HeroSectionController
}

func NewHeroSectionRouter(heroSectionController *controller.HeroSectionController) *HeroSectionRouter {
	return &HeroSectionRouter{HeroSectionController: heroSectionController}
}

func (r *HeroSectionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	heroRoutes := e.Group("/hero-section")

	heroRoutes.GET("", r.HeroSectionController.FindAll)
	heroRoutes.GET("/:id", r.HeroSectionController.FindOne)
	heroRoutes.POST("", r.HeroSectionController.Create, mw.AuthMiddleware())
	heroRoutes.PATCH("/:id", r.HeroSectionController.Update, mw.AuthMiddleware())
	heroRoutes.DELETE("/:id", r.HeroSectionController.Remove, mw.AuthMiddleware())
}

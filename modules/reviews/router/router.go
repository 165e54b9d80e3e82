package router

import (
	"makerskills-api/core/middleware"
	"makerskills-api/modules/reviews/controller"

	"github.com/labstack/echo/v4"
)

type ReviewRouter struct {
	ReviewController *controller.ReviewController
}

func NewReviewRouter(reviewController *controller.ReviewController) *ReviewRouter {
	return &ReviewRouter{ReviewController: reviewController}
}

func (r *ReviewRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	reviewRoutes := e.Group("/reviews")

	reviewRoutes.GET("", r.ReviewController.FindAll)
	reviewRoutes.GET("/:id", r.ReviewController.FindOne)
	reviewRoutes.POST("", r.ReviewController.Create, mw.AuthMiddleware())
	reviewRoutes.PATCH("/:id", r.ReviewController.Update, mw.AuthMiddleware())
	reviewRoutes.DELETE("/:id", r.ReviewController.Remove, mw.AuthMiddleware())
}

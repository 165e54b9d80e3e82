package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/reviews/dto"
	"makerskills-api/modules/reviews/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "reviews"

type ReviewController struct {
	controller.BaseController
	ReviewService service.ReviewServiceInterface
	Storage       storage.Storage
}

func NewReviewController(svc service.ReviewServiceInterface, store storage.Storage) *ReviewController {
	return &ReviewController{
		BaseController: controller.NewBaseController(),
		ReviewService:  svc,
		Storage:        store,
	}
}

// Create handles POST /reviews; the reviewer photo arrives as the
// multipart field "image".
func (c *ReviewController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateReviewRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	file, err := ctx.FormFile("image")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("ReviewController:Create:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store review image")
		}
		requestData.Image = path
	}

	review, appErr := c.ReviewService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, review, "Review created successfully")
}

func (c *ReviewController) FindAll(ctx echo.Context) error {
	reviews, appErr := c.ReviewService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, reviews, "Success")
}

func (c *ReviewController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid review ID")
	}

	review, appErr := c.ReviewService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, review, "Success")
}

func (c *ReviewController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid review ID")
	}

	requestData := new(dto.UpdateReviewRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	var oldImage string
	file, err := ctx.FormFile("image")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}

		existing, appErr := c.ReviewService.FindOne(ctx.Request().Context(), id)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		if existing.Image != nil {
			oldImage = *existing.Image
		}

		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("ReviewController:Update:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store review image")
		}
		requestData.Image = &path
	}

	review, appErr := c.ReviewService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if oldImage != "" {
		if rmErr := c.Storage.Remove(oldImage); rmErr != nil {
			logger.Warn("ReviewController:Update:RemoveOldImage", "path", oldImage, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, review, "Review updated successfully")
}

func (c *ReviewController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid review ID")
	}

	review, appErr := c.ReviewService.Remove(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if review.Image != nil {
		if rmErr := c.Storage.Remove(*review.Image); rmErr != nil {
			logger.Warn("ReviewController:Remove:RemoveImage", "path", *review.Image, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, nil, "Review deleted successfully")
}

package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/workshops/dto"
	"makerskills-api/modules/workshops/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "workshops"

type WorkshopController struct {
	controller.BaseController
	WorkshopService service.WorkshopServiceInterface
	Storage         storage.Storage
}

func NewWorkshopController(svc service.WorkshopServiceInterface, store storage.Storage) *WorkshopController {
	return &WorkshopController{
		BaseController:  controller.NewBaseController(),
		WorkshopService: svc,
		Storage:         store,
	}
}

// Create handles POST /workshops
func (c *WorkshopController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateWorkshopRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	file, err := ctx.FormFile("coverImage")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("WorkshopController:Create:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store cover image")
		}
		requestData.CoverImage = path
	}

	workshop, appErr := c.WorkshopService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, workshop, "Workshop created successfully")
}

// FindAll handles GET /workshops
func (c *WorkshopController) FindAll(ctx echo.Context) error {
	workshops, appErr := c.WorkshopService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, workshops, "Success")
}

// FindOne handles GET /workshops/:id
func (c *WorkshopController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid workshop ID")
	}

	workshop, appErr := c.WorkshopService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, workshop, "Success")
}

// Update handles PATCH /workshops/:id
func (c *WorkshopController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid workshop ID")
	}

	requestData := new(dto.UpdateWorkshopRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	var oldCover string
	file, err := ctx.FormFile("coverImage")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}

		existing, appErr := c.WorkshopService.FindOne(ctx.Request().Context(), id)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		oldCover = existing.CoverImage

		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("WorkshopController:Update:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store cover image")
		}
		requestData.CoverImage = &path
	}

	workshop, appErr := c.WorkshopService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if oldCover != "" && oldCover != workshop.CoverImage {
		if rmErr := c.Storage.Remove(oldCover); rmErr != nil {
			logger.Warn("WorkshopController:Update:RemoveOldCover", "path", oldCover, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, workshop, "Workshop updated successfully")
}

// Remove handles DELETE /workshops/:id
func (c *WorkshopController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid workshop ID")
	}

	if appErr := c.WorkshopService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Workshop deleted successfully")
}

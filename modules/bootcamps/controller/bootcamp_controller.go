package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/bootcamps/dto"
	"makerskills-api/modules/bootcamps/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "bootcamps"

type BootcampController struct {
	controller.BaseController
	BootcampService service.BootcampServiceInterface
	Storage         storage.Storage
}

func NewBootcampController(svc service.BootcampServiceInterface, store storage.Storage) *BootcampController {
	return &BootcampController{
		BaseController:  controller.NewBaseController(),
		BootcampService: svc,
		Storage:         store,
	}
}

// Create handles POST /bootcamps. Gallery images arrive as the
// multipart field "images" and are validated before anything is stored.
func (c *BootcampController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateBootcampRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	paths, appErr := c.saveImages(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if len(paths) > 0 {
		requestData.Images = paths
	}

	bootcamp, svcErr := c.BootcampService.Create(ctx.Request().Context(), requestData)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.CreatedResponse(ctx, bootcamp, "Bootcamp created successfully")
}

func (c *BootcampController) FindAll(ctx echo.Context) error {
	bootcamps, appErr := c.BootcampService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, bootcamps, "Success")
}

func (c *BootcampController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid bootcamp ID")
	}

	bootcamp, appErr := c.BootcampService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, bootcamp, "Success")
}

func (c *BootcampController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid bootcamp ID")
	}

	requestData := new(dto.UpdateBootcampRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	paths, appErr := c.saveImages(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if len(paths) > 0 {
		requestData.Images = paths
	}

	bootcamp, replaced, svcErr := c.BootcampService.Update(ctx.Request().Context(), id, requestData)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	for _, path := range replaced {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("BootcampController:Update:RemoveOldImage", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, bootcamp, "Bootcamp updated successfully")
}

func (c *BootcampController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid bootcamp ID")
	}

	bootcamp, appErr := c.BootcampService.Remove(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	for _, path := range bootcamp.Images {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("BootcampController:Remove:RemoveImage", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, nil, "Bootcamp deleted successfully")
}

func (c *BootcampController) saveImages(ctx echo.Context) ([]string, *errors.AppError) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File["images"]
	for _, f := range files {
		if appErr := storage.ValidateExtension(f.Filename, storage.KindImage); appErr != nil {
			return nil, appErr
		}
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, saveErr := c.Storage.Save(f, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("BootcampController:SaveImages", saveErr)
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store bootcamp images", saveErr)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

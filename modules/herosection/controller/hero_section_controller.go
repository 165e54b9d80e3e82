package controller

import (
	"mime/multipart"

	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/herosection/dto"
	"makerskills-api/modules/herosection/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "hero-section"

type HeroSectionController struct {
	controller.BaseController
	HeroSectionService service.HeroSectionServiceInterface
	Storage            storage.Storage
}

func NewHeroSectionController(svc service.HeroSectionServiceInterface, store storage.Storage) *HeroSectionController {
	return &HeroSectionController{
		BaseController:     controller.NewBaseController(),
		HeroSectionService: svc,
		Storage:            store,
	}
}

// collectImages gathers the multipart "images" files, validating every
// extension before anything is written to storage.
func (c *HeroSectionController) collectImages(ctx echo.Context) ([]*multipart.FileHeader, *errors.AppError) {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	for _, file := range files {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return nil, appErr
		}
	}
	return files, nil
}

func (c *HeroSectionController) saveImages(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := c.Storage.Save(file, uploadModule, storage.KindImage)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *HeroSectionController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateHeroSectionRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	files, appErr := c.collectImages(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if len(files) > 0 {
		paths, err := c.saveImages(files)
		if err != nil {
			logger.Error("HeroSectionController:Create:Save", err)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store hero section images")
		}
		requestData.Images = paths
	}

	section, appErr := c.HeroSectionService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, section, "Hero section created successfully")
}

func (c *HeroSectionController) FindAll(ctx echo.Context) error {
	sections, appErr := c.HeroSectionService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, sections, "Success")
}

func (c *HeroSectionController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid hero section ID")
	}

	section, appErr := c.HeroSectionService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, section, "Success")
}

func (c *HeroSectionController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid hero section ID")
	}

	requestData := new(dto.UpdateHeroSectionRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	files, appErr := c.collectImages(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if len(files) > 0 {
		paths, saveErr := c.saveImages(files)
		if saveErr != nil {
			logger.Error("HeroSectionController:Update:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store hero section images")
		}
		requestData.Images = paths
	}

	section, replaced, appErr := c.HeroSectionService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	for _, path := range replaced {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("HeroSectionController:Update:RemoveOldImage", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, section, "Hero section updated successfully")
}

func (c *HeroSectionController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid hero section ID")
	}

	section, appErr := c.HeroSectionService.Remove(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	for _, path := range section.Images {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("HeroSectionController:Remove:RemoveImage", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, nil, "Hero section deleted successfully")
}

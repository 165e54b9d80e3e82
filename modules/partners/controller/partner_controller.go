package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/partners/dto"
	"makerskills-api/modules/partners/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "partners"

type PartnerController struct {
	controller.BaseController
	PartnerService service.PartnerServiceInterface
	Storage        storage.Storage
}

func NewPartnerController(svc service.PartnerServiceInterface, store storage.Storage) *PartnerController {
	return &PartnerController{
		BaseController: controller.NewBaseController(),
		PartnerService: svc,
		Storage:        store,
	}
}

// Create handles POST /partners; the partner logo arrives as the
// multipart field "logo".
func (c *PartnerController) Create(ctx echo.Context) error {
	requestData := new(dto.CreatePartnerRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	file, err := ctx.FormFile("logo")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("PartnerController:Create:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store partner logo")
		}
		requestData.Logo = path
	}

	partner, appErr := c.PartnerService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, partner, "Partner created successfully")
}

func (c *PartnerController) FindAll(ctx echo.Context) error {
	partners, appErr := c.PartnerService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, partners, "Success")
}

func (c *PartnerController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid partner ID")
	}

	partner, appErr := c.PartnerService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, partner, "Success")
}

func (c *PartnerController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid partner ID")
	}

	requestData := new(dto.UpdatePartnerRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	var oldLogo string
	file, err := ctx.FormFile("logo")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}

		existing, appErr := c.PartnerService.FindOne(ctx.Request().Context(), id)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		if existing.Logo != nil {
			oldLogo = *existing.Logo
		}

		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("PartnerController:Update:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store partner logo")
		}
		requestData.Logo = &path
	}

	partner, appErr := c.PartnerService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if oldLogo != "" {
		if rmErr := c.Storage.Remove(oldLogo); rmErr != nil {
			logger.Warn("PartnerController:Update:RemoveOldLogo", "path", oldLogo, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, partner, "Partner updated successfully")
}

func (c *PartnerController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid partner ID")
	}

	partner, appErr := c.PartnerService.Remove(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if partner.Logo != nil {
		if rmErr := c.Storage.Remove(*partner.Logo); rmErr != nil {
			logger.Warn("PartnerController:Remove:RemoveLogo", "path", *partner.Logo, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, nil, "Partner deleted successfully")
}

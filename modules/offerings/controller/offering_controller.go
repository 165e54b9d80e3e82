package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/modules/offerings/dto"
	"makerskills-api/modules/offerings/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OfferingController struct {
	controller.BaseController
	OfferingService service.OfferingServiceInterface
}

func NewOfferingController(svc service.OfferingServiceInterface) *OfferingController {
	return &OfferingController{
		BaseController:  controller.NewBaseController(),
		OfferingService: svc,
	}
}

func (c *OfferingController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateOfferingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	offering, appErr := c.OfferingService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, offering, "Service created successfully")
}

func (c *OfferingController) FindAll(ctx echo.Context) error {
	offerings, appErr := c.OfferingService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, offerings, "Success")
}

func (c *OfferingController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid service ID")
	}

	offering, appErr := c.OfferingService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, offering, "Success")
}

func (c *OfferingController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid service ID")
	}

	requestData := new(dto.UpdateOfferingRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	offering, appErr := c.OfferingService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, offering, "Service updated successfully")
}

func (c *OfferingController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid service ID")
	}

	if appErr := c.OfferingService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Service deleted successfully")
}

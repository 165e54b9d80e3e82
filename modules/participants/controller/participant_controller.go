package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/modules/participants/dto"
	"makerskills-api/modules/participants/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: svc,
	}
}

// Register handles POST /participants — the public registration form.
func (c *ParticipantController) Register(ctx echo.Context) error {
	requestData := new(dto.RegisterParticipantRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	registration, appErr := c.ParticipantService.Register(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, registration, "Registration successful")
}

// FindAll handles GET /participants — participants grouped by event.
func (c *ParticipantController) FindAll(ctx echo.Context) error {
	groups, appErr := c.ParticipantService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, groups, "Participants grouped by event")
}

// FindOne handles GET /participants/:id
func (c *ParticipantController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid participant ID")
	}

	participant, appErr := c.ParticipantService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, participant, "Success")
}

// FindByEvent handles GET /participants/event/:eventId
func (c *ParticipantController) FindByEvent(ctx echo.Context) error {
	participants, appErr := c.ParticipantService.FindByEvent(ctx.Request().Context(), ctx.Param("eventId"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, participants, "Event participants retrieved successfully")
}

// FindEventsByEmail handles GET /participants/email/:email/events
func (c *ParticipantController) FindEventsByEmail(ctx echo.Context) error {
	result, appErr := c.ParticipantService.FindEventsByEmail(ctx.Request().Context(), ctx.Param("email"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Participant events retrieved successfully")
}

// Update handles PATCH /participants/:id
func (c *ParticipantController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid participant ID")
	}

	requestData := new(dto.UpdateParticipantRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	participant, appErr := c.ParticipantService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, participant, "Participant updated successfully")
}

// Remove handles DELETE /participants/:id
func (c *ParticipantController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid participant ID")
	}

	if appErr := c.ParticipantService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Participant deleted successfully")
}

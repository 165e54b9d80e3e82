package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/events/dto"
	"makerskills-api/modules/events/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "events"

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
	Storage      storage.Storage
}

func NewEventController(svc service.EventServiceInterface, store storage.Storage) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
		Storage:        store,
	}
}

// Create handles POST /events. The cover image arrives as the
// multipart field "coverImage" and is validated before anything is
// stored or written.
func (c *EventController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateEventRequest)
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
			logger.Error("EventController:Create:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store cover image")
		}
		requestData.CoverImage = path
	}

	event, appErr := c.EventService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, event, "Event created successfully")
}

// FindAll handles GET /events
func (c *EventController) FindAll(ctx echo.Context) error {
	events, appErr := c.EventService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, events, "Success")
}

// FindOne handles GET /events/:id
func (c *EventController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event ID")
	}

	event, appErr := c.EventService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, event, "Success")
}

// Update handles PATCH /events/:id. A replaced cover image removes the
// previous file after the update succeeds.
func (c *EventController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event ID")
	}

	requestData := new(dto.UpdateEventRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	var oldCover string
	file, err := ctx.FormFile("coverImage")
	if err == nil && file != nil {
		if appErr := storage.ValidateExtension(file.Filename, storage.KindImage); appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}

		existing, appErr := c.EventService.FindOne(ctx.Request().Context(), id)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		oldCover = existing.CoverImage

		path, saveErr := c.Storage.Save(file, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("EventController:Update:Save", saveErr)
			return c.InternalServerError(errors.ErrInternalServer, "failed to store cover image")
		}
		requestData.CoverImage = &path
	}

	event, appErr := c.EventService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if oldCover != "" && oldCover != event.CoverImage {
		if rmErr := c.Storage.Remove(oldCover); rmErr != nil {
			logger.Warn("EventController:Update:RemoveOldCover", "path", oldCover, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, event, "Event updated successfully")
}

// Remove handles DELETE /events/:id
func (c *EventController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event ID")
	}

	if appErr := c.EventService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

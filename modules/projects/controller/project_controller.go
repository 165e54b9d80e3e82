package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/modules/projects/dto"
	"makerskills-api/modules/projects/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	controller.BaseController
	ProjectService service.ProjectServiceInterface
}

func NewProjectController(svc service.ProjectServiceInterface) *ProjectController {
	return &ProjectController{
		BaseController: controller.NewBaseController(),
		ProjectService: svc,
	}
}

func (c *ProjectController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateProjectRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	project, appErr := c.ProjectService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, project, "Project created successfully")
}

func (c *ProjectController) FindAll(ctx echo.Context) error {
	projects, appErr := c.ProjectService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, projects, "Success")
}

func (c *ProjectController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid project ID")
	}

	project, appErr := c.ProjectService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, project, "Success")
}

func (c *ProjectController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid project ID")
	}

	requestData := new(dto.UpdateProjectRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	project, appErr := c.ProjectService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, project, "Project updated successfully")
}

func (c *ProjectController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid project ID")
	}

	if appErr := c.ProjectService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Project deleted successfully")
}

package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/modules/categories/dto"
	"makerskills-api/modules/categories/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	controller.BaseController
	CategoryService service.CategoryServiceInterface
}

func NewCategoryController(svc service.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		BaseController:  controller.NewBaseController(),
		CategoryService: svc,
	}
}

func (c *CategoryController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateCategoryRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	category, appErr := c.CategoryService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, category, "Category created successfully")
}

func (c *CategoryController) FindAll(ctx echo.Context) error {
	categories, appErr := c.CategoryService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, categories, "Success")
}

func (c *CategoryController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid category ID")
	}

	category, appErr := c.CategoryService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, category, "Success")
}

func (c *CategoryController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid category ID")
	}

	requestData := new(dto.UpdateCategoryRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	category, appErr := c.CategoryService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, category, "Category updated successfully")
}

func (c *CategoryController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid category ID")
	}

	if appErr := c.CategoryService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Category deleted successfully")
}

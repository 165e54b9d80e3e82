package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/modules/orders/dto"
	"makerskills-api/modules/orders/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrderController struct {
	controller.BaseController
	OrderService service.OrderServiceInterface
}

func NewOrderController(svc service.OrderServiceInterface) *OrderController {
	return &OrderController{
		BaseController: controller.NewBaseController(),
		OrderService:   svc,
	}
}

// Create handles POST /orders — the public checkout form.
func (c *OrderController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateOrderRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	order, appErr := c.OrderService.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, order, "Order created successfully")
}

func (c *OrderController) FindAll(ctx echo.Context) error {
	orders, appErr := c.OrderService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, orders, "Success")
}

func (c *OrderController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid order ID")
	}

	order, appErr := c.OrderService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, order, "Success")
}

func (c *OrderController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid order ID")
	}

	requestData := new(dto.UpdateOrderRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	order, appErr := c.OrderService.Update(ctx.Request().Context(), id, requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, order, "Order updated successfully")
}

func (c *OrderController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid order ID")
	}

	if appErr := c.OrderService.Remove(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Order deleted successfully")
}

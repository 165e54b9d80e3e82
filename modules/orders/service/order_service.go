package service

import (
	"context"
	"database/sql"
	"time"

	"makerskills-api/core/errors"
	"makerskills-api/core/utils"
	"makerskills-api/modules/orders/dto"
	"makerskills-api/modules/orders/entity"
	"makerskills-api/modules/orders/repository"
	productentity "makerskills-api/modules/products/entity"

	"github.com/google/uuid"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, *errors.AppError)
	FindAll(ctx context.Context) ([]dto.OrderResponse, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderRequest) (*dto.OrderResponse, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type OrderService struct {
	repo repository.OrderRepositoryInterface
}

func NewOrderService(repo repository.OrderRepositoryInterface) *OrderService {
	return &OrderService{repo: repo}
}

func (service *OrderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, *errors.AppError) {
	if req.FullName == "" || req.PhoneNumber == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "full name and phone number are required", nil)
	}
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
	}

	order := &entity.Order{
		FullName:    req.FullName,
		Email:       email,
		PhoneNumber: req.PhoneNumber,
		Delivery:    req.Delivery,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		OrderDate:   req.OrderDate,
	}
	if req.Address != "" {
		order.Address = &req.Address
	}
	if req.Note != "" {
		order.Note = &req.Note
	}
	if req.DeliveryMethod != "" {
		order.DeliveryMethod = &req.DeliveryMethod
	}
	if req.ProductName != "" {
		order.ProductName = &req.ProductName
	}
	if order.OrderDate == nil {
		now := time.Now()
		order.OrderDate = &now
	}
	order.TotalPrice = computeTotal(order.UnitPrice, order.Quantity)

	itemIDs, appErr := parseItemIDs(req.Items)
	if appErr != nil {
		return nil, appErr
	}

	created, err := service.repo.Create(ctx, order, itemIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create order: "+err.Error(), err)
	}
	return service.toResponse(ctx, created)
}

func (service *OrderService) FindAll(ctx context.Context) ([]dto.OrderResponse, *errors.AppError) {
	orders, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve orders", err)
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := service.repo.GetItems(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve order items", err)
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp := dto.OrderResponse{Order: orders[i], Items: items[orders[i].ID]}
		if resp.Items == nil {
			resp.Items = []productentity.Product{}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (service *OrderService) FindOne(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, *errors.AppError) {
	order, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve order", err)
	}
	if order == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "order not found", nil)
	}
	return service.toResponse(ctx, order)
}

func (service *OrderService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderRequest) (*dto.OrderResponse, *errors.AppError) {
	order, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve order", err)
	}
	if order == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "order not found", nil)
	}

	if req.FullName != nil {
		order.FullName = *req.FullName
	}
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if !utils.IsValidEmail(email) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
		}
		order.Email = email
	}
	if req.PhoneNumber != nil {
		order.PhoneNumber = *req.PhoneNumber
	}
	if req.Delivery != nil {
		order.Delivery = *req.Delivery
	}
	if req.Address != nil {
		order.Address = req.Address
	}
	if req.Note != nil {
		order.Note = req.Note
	}
	if req.DeliveryMethod != nil {
		order.DeliveryMethod = req.DeliveryMethod
	}
	if req.ProductName != nil {
		order.ProductName = req.ProductName
	}
	if req.Quantity != nil {
		order.Quantity = req.Quantity
	}
	if req.UnitPrice != nil {
		order.UnitPrice = req.UnitPrice
	}
	if req.OrderDate != nil {
		order.OrderDate = req.OrderDate
	}
	order.TotalPrice = computeTotal(order.UnitPrice, order.Quantity)

	var itemIDs []uuid.UUID
	if req.Items != nil {
		parsed, appErr := parseItemIDs(req.Items)
		if appErr != nil {
			return nil, appErr
		}
		if parsed == nil {
			parsed = []uuid.UUID{}
		}
		itemIDs = parsed
	}

	if err := service.repo.Update(ctx, order, itemIDs); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "order not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update order: "+err.Error(), err)
	}
	return service.toResponse(ctx, order)
}

func (service *OrderService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete order", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "order not found", nil)
	}
	return nil
}

func (service *OrderService) toResponse(ctx context.Context, order *entity.Order) (*dto.OrderResponse, *errors.AppError) {
	items, err := service.repo.GetItems(ctx, []uuid.UUID{order.ID})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve order items", err)
	}

	resp := &dto.OrderResponse{Order: *order, Items: items[order.ID]}
	if resp.Items == nil {
		resp.Items = []productentity.Product{}
	}
	return resp, nil
}

// computeTotal derives totalPrice whenever both factors are present.
func computeTotal(unitPrice *float64, quantity *int) *float64 {
	if unitPrice == nil || quantity == nil {
		return nil
	}
	total := *unitPrice * float64(*quantity)
	return &total
}

func parseItemIDs(values []string) ([]uuid.UUID, *errors.AppError) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid product ID in items", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

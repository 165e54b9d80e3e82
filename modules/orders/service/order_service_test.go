package service

import (
	"context"
	"testing"

	"makerskills-api/core/errors"
	"makerskills-api/modules/orders/dto"
	"makerskills-api/modules/orders/entity"
	productentity "makerskills-api/modules/products/entity"

	"github.com/google/uuid"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	items  map[uuid.UUID][]uuid.UUID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[uuid.UUID]*entity.Order{},
		items:  map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order, itemIDs []uuid.UUID) (*entity.Order, error) {
	order.ID = uuid.New()
	f.orders[order.ID] = order
	f.items[order.ID] = itemIDs
	return order, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order, itemIDs []uuid.UUID) error {
	f.orders[order.ID] = order
	if itemIDs != nil {
		f.items[order.ID] = itemIDs
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

func (f *fakeOrderRepo) GetItems(_ context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]productentity.Product, error) {
	return map[uuid.UUID][]productentity.Product{}, nil
}

func orderRequest() *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		FullName:    "Sami B.",
		Email:       "sami@example.com",
		PhoneNumber: "+21612345678",
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	req := orderRequest()
	quantity := 3
	unitPrice := 19.5
	req.Quantity = &quantity
	req.UnitPrice = &unitPrice

	resp, appErr := svc.Create(context.Background(), req)
	if appErr != nil {
		t.Fatalf("Create: %v", appErr)
	}
	if resp.TotalPrice == nil || *resp.TotalPrice != 58.5 {
		t.Errorf("total = %v, want 58.5", resp.TotalPrice)
	}
	if resp.OrderDate == nil {
		t.Error("order date not defaulted")
	}
}

func TestCreateOrderWithoutPricingHasNoTotal(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	resp, appErr := svc.Create(context.Background(), orderRequest())
	if appErr != nil {
		t.Fatalf("Create: %v", appErr)
	}
	if resp.TotalPrice != nil {
		t.Errorf("total = %v, want nil", *resp.TotalPrice)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	missingName := orderRequest()
	missingName.FullName = ""
	if _, appErr := svc.Create(context.Background(), missingName); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}

	badEmail := orderRequest()
	badEmail.Email = "not-an-email"
	if _, appErr := svc.Create(context.Background(), badEmail); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}

	badItem := orderRequest()
	badItem.Items = []string{"not-a-uuid"}
	if _, appErr := svc.Create(context.Background(), badItem); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("error = %v, want %s", appErr, errors.ErrInvalidInput)
	}
}

func TestUpdateOrderRecomputesTotal(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	req := orderRequest()
	quantity := 2
	unitPrice := 10.0
	req.Quantity = &quantity
	req.UnitPrice = &unitPrice
	created, appErr := svc.Create(context.Background(), req)
	if appErr != nil {
		t.Fatalf("Create: %v", appErr)
	}

	newQuantity := 5
	updated, appErr := svc.Update(context.Background(), created.ID, &dto.UpdateOrderRequest{Quantity: &newQuantity})
	if appErr != nil {
		t.Fatalf("Update: %v", appErr)
	}
	if updated.TotalPrice == nil || *updated.TotalPrice != 50.0 {
		t.Errorf("total = %v, want 50", updated.TotalPrice)
	}
}

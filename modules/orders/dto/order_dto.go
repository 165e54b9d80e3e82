package dto

import (
	"time"

	"makerskills-api/modules/orders/entity"
	productentity "makerskills-api/modules/products/entity"
)

type CreateOrderRequest struct {
	FullName       string     `json:"fullName" form:"fullName"`
	Email          string     `json:"email" form:"email"`
	PhoneNumber    string     `json:"phoneNumber" form:"phoneNumber"`
	Items          []string   `json:"items" form:"items"`
	Delivery       bool       `json:"delivery" form:"delivery"`
	Address        string     `json:"address" form:"address"`
	Note           string     `json:"note" form:"note"`
	DeliveryMethod string     `json:"deliveryMethod" form:"deliveryMethod"`
	ProductName    string     `json:"productName" form:"productName"`
	Quantity       *int       `json:"quantity" form:"quantity"`
	UnitPrice      *float64   `json:"unitPrice" form:"unitPrice"`
	OrderDate      *time.Time `json:"orderDate" form:"orderDate"`
}

type UpdateOrderRequest struct {
	FullName       *string    `json:"fullName" form:"fullName"`
	Email          *string    `json:"email" form:"email"`
	PhoneNumber    *string    `json:"phoneNumber" form:"phoneNumber"`
	Items          []string   `json:"items" form:"items"`
	Delivery       *bool      `json:"delivery" form:"delivery"`
	Address        *string    `json:"address" form:"address"`
	Note           *string    `json:"note" form:"note"`
	DeliveryMethod *string    `json:"deliveryMethod" form:"deliveryMethod"`
	ProductName    *string    `json:"productName" form:"productName"`
	Quantity       *int       `json:"quantity" form:"quantity"`
	UnitPrice      *float64   `json:"unitPrice" form:"unitPrice"`
	OrderDate      *time.Time `json:"orderDate" form:"orderDate"`
}

// OrderResponse embeds the ordered products expanded at read time.
type OrderResponse struct {
	entity.Order
	Items []productentity.Product `json:"items"`
}

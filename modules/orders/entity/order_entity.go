package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	FullName       string     `db:"full_name" json:"fullName"`
	Email          string     `db:"email" json:"email"`
	PhoneNumber    string     `db:"phone_number" json:"phoneNumber"`
	Delivery       bool       `db:"delivery" json:"delivery"`
	Address        *string    `db:"address" json:"address,omitempty"`
	Note           *string    `db:"note" json:"note,omitempty"`
	DeliveryMethod *string    `db:"delivery_method" json:"deliveryMethod,omitempty"`
	ProductName    *string    `db:"product_name" json:"productName,omitempty"`
	Quantity       *int       `db:"quantity" json:"quantity,omitempty"`
	UnitPrice      *float64   `db:"unit_price" json:"unitPrice,omitempty"`
	TotalPrice     *float64   `db:"total_price" json:"totalPrice,omitempty"`
	OrderDate      *time.Time `db:"order_date" json:"orderDate,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

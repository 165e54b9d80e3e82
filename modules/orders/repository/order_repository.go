package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/orders/entity"
	productentity "makerskills-api/modules/products/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *entity.Order, itemIDs []uuid.UUID) (*entity.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetAll(ctx context.Context) ([]entity.Order, error)
	Update(ctx context.Context, order *entity.Order, itemIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]productentity.Product, error)
}

type OrderRepository struct {
	DB database.IDatabase
}

func NewOrderRepository(db database.IDatabase) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `
	id, full_name, email, phone_number, delivery, address, note,
	delivery_method, product_name, quantity, unit_price, total_price,
	order_date, created_at, updated_at`

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order, itemIDs []uuid.UUID) (*entity.Order, error) {
	query := `
		INSERT INTO orders (
			full_name, email, phone_number, delivery, address, note,
			delivery_method, product_name, quantity, unit_price,
			total_price, order_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING` + orderColumns

	var created entity.Order
	err := r.DB.GetContext(ctx, &created, query,
		order.FullName, order.Email, order.PhoneNumber, order.Delivery,
		order.Address, order.Note, order.DeliveryMethod, order.ProductName,
		order.Quantity, order.UnitPrice, order.TotalPrice, order.OrderDate,
	)
	if err != nil {
		logger.Error("OrderRepository:Create", err)
		return nil, err
	}

	if err := r.replaceItems(ctx, created.ID, itemIDs); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	query := `SELECT` + orderColumns + ` FROM orders WHERE id = $1`
	err := r.DB.GetContext(ctx, &order, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OrderRepository:GetByID", err)
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	query := `SELECT` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &orders, query); err != nil {
		logger.Error("OrderRepository:GetAll", err)
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order, itemIDs []uuid.UUID) error {
	query := `
		UPDATE orders
		SET full_name = $1, email = $2, phone_number = $3, delivery = $4,
			address = $5, note = $6, delivery_method = $7, product_name = $8,
			quantity = $9, unit_price = $10, total_price = $11,
			order_date = $12, updated_at = now()
		WHERE id = $13
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		order.FullName, order.Email, order.PhoneNumber, order.Delivery,
		order.Address, order.Note, order.DeliveryMethod, order.ProductName,
		order.Quantity, order.UnitPrice, order.TotalPrice, order.OrderDate,
		order.ID,
	)
	if err != nil {
		logger.Error("OrderRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}

	if itemIDs != nil {
		return r.replaceItems(ctx, order.ID, itemIDs)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		logger.Error("OrderRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// GetItems batch-loads the ordered products for populate.
func (r *OrderRepository) GetItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]productentity.Product, error) {
	if len(orderIDs) == 0 {
		return map[uuid.UUID][]productentity.Product{}, nil
	}

	type row struct {
		OrderID uuid.UUID `db:"order_id"`
		productentity.Product
	}

	var rows []row
	query := `
		SELECT oi.order_id, p.id, p.name, p.slug, p.description, p.price,
			p.category_id, p.images, p.video, p.created_at, p.updated_at
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
	`
	if err := r.DB.SelectContext(ctx, &rows, query, pq.Array(orderIDs)); err != nil {
		logger.Error("OrderRepository:GetItems", err)
		return nil, err
	}

	result := make(map[uuid.UUID][]productentity.Product, len(orderIDs))
	for _, rw := range rows {
		result[rw.OrderID] = append(result[rw.OrderID], rw.Product)
	}
	return result, nil
}

func (r *OrderRepository) replaceItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		logger.Error("OrderRepository:ReplaceItems", err)
		return err
	}
	for _, pid := range itemIDs {
		err := r.DB.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			orderID, pid)
		if err != nil {
			logger.Error("OrderRepository:ReplaceItems", err)
			return err
		}
	}
	return nil
}

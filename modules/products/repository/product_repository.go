package repository

import (
	"context"
	"database/sql"
	"strconv"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/core/params"
	categoryentity "makerskills-api/modules/categories/entity"
	"makerskills-api/modules/products/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetAll(ctx context.Context, p params.QueryParams) ([]entity.Product, int, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetCategories(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID]categoryentity.Category, error)
}

type ProductRepository struct {
	DB database.IDatabase
}

func NewProductRepository(db database.IDatabase) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `
	id, name, slug, description, price, category_id, images, video,
	created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var created entity.Product
	query := `
		INSERT INTO products (name, slug, description, price, category_id, images, video)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + productColumns
	err := r.DB.GetContext(ctx, &created, query,
		product.Name, product.Slug, product.Description, product.Price,
		product.CategoryID, product.Images, product.Video,
	)
	if err != nil {
		logger.Error("ProductRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProductRepository:GetByID", err)
		return nil, err
	}
	return &product, nil
}

// GetAll returns a page of the catalog plus the total match count.
// Search filters on name, case-insensitively.
func (r *ProductRepository) GetAll(ctx context.Context, p params.QueryParams) ([]entity.Product, int, error) {
	where := ``
	args := []any{}
	if p.Search != "" {
		where = ` WHERE name ILIKE $1`
		args = append(args, "%"+p.Search+"%")
	}

	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT count(*) FROM products`+where, args...); err != nil {
		logger.Error("ProductRepository:GetAll:Count", err)
		return nil, 0, err
	}

	query := `SELECT` + productColumns + ` FROM products` + where +
		` ORDER BY created_at DESC` +
		` LIMIT ` + strconv.Itoa(p.PageSize) + ` OFFSET ` + strconv.Itoa(p.Offset())

	var products []entity.Product
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		logger.Error("ProductRepository:GetAll", err)
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, slug = $2, description = $3, price = $4,
			category_id = $5, images = $6, video = $7, updated_at = now()
		WHERE id = $8
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		product.Name, product.Slug, product.Description, product.Price,
		product.CategoryID, product.Images, product.Video, product.ID,
	)
	if err != nil {
		logger.Error("ProductRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.Error("ProductRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// GetCategories batch-loads category summaries for populate.
func (r *ProductRepository) GetCategories(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID]categoryentity.Category, error) {
	if len(categoryIDs) == 0 {
		return map[uuid.UUID]categoryentity.Category{}, nil
	}

	var categories []categoryentity.Category
	query := `SELECT id, name, description, type, created_at, updated_at FROM categories WHERE id = ANY($1)`
	if err := r.DB.SelectContext(ctx, &categories, query, pq.Array(categoryIDs)); err != nil {
		logger.Error("ProductRepository:GetCategories", err)
		return nil, err
	}

	result := make(map[uuid.UUID]categoryentity.Category, len(categories))
	for _, c := range categories {
		result[c.ID] = c
	}
	return result, nil
}

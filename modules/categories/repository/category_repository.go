package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/categories/entity"

	"github.com/google/uuid"
)

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetAll(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type CategoryRepository struct {
	DB database.IDatabase
}

func NewCategoryRepository(db database.IDatabase) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	var created entity.Category
	query := `
		INSERT INTO categories (name, description, type)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, type, created_at, updated_at
	`
	err := r.DB.GetContext(ctx, &created, query, category.Name, category.Description, category.Type)
	if err != nil {
		logger.Error("CategoryRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	query := `SELECT id, name, description, type, created_at, updated_at FROM categories WHERE id = $1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CategoryRepository:GetByID", err)
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	query := `SELECT id, name, description, type, created_at, updated_at FROM categories ORDER BY name`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		logger.Error("CategoryRepository:GetAll", err)
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, type = $3, updated_at = now()
		WHERE id = $4
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query, category.Name, category.Description, category.Type, category.ID)
	if err != nil {
		logger.Error("CategoryRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		logger.Error("CategoryRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

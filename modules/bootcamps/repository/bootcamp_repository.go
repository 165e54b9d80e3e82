package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/bootcamps/entity"

	"github.com/google/uuid"
)

type BootcampRepositoryInterface interface {
	Create(ctx context.Context, bootcamp *entity.Bootcamp, productIDs []uuid.UUID) (*entity.Bootcamp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bootcamp, error)
	GetAll(ctx context.Context) ([]entity.Bootcamp, error)
	Update(ctx context.Context, bootcamp *entity.Bootcamp, productIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetProductIDs(ctx context.Context, bootcampID uuid.UUID) ([]uuid.UUID, error)
}

type BootcampRepository struct {
	DB database.IDatabase
}

func NewBootcampRepository(db database.IDatabase) *BootcampRepository {
	return &BootcampRepository{DB: db}
}

const bootcampColumns = `
	id, name, category_id, types, description, images, date_debut,
	date_fin, periode, location, price, animator, created_at, updated_at`

func (r *BootcampRepository) Create(ctx context.Context, bootcamp *entity.Bootcamp, productIDs []uuid.UUID) (*entity.Bootcamp, error) {
	query := `
		INSERT INTO bootcamps (
			name, category_id, types, description, images, date_debut,
			date_fin, periode, location, price, animator
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + bootcampColumns

	var created entity.Bootcamp
	err := r.DB.GetContext(ctx, &created, query,
		bootcamp.Name, bootcamp.CategoryID, bootcamp.Types, bootcamp.Description,
		bootcamp.Images, bootcamp.DateDebut, bootcamp.DateFin, bootcamp.Periode,
		bootcamp.Location, bootcamp.Price, bootcamp.Animator,
	)
	if err != nil {
		logger.Error("BootcampRepository:Create", err)
		return nil, err
	}

	if err := r.replaceProducts(ctx, created.ID, productIDs); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BootcampRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bootcamp, error) {
	var bootcamp entity.Bootcamp
	query := `SELECT` + bootcampColumns + ` FROM bootcamps WHERE id = $1`
	err := r.DB.GetContext(ctx, &bootcamp, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BootcampRepository:GetByID", err)
		return nil, err
	}
	return &bootcamp, nil
}

func (r *BootcampRepository) GetAll(ctx context.Context) ([]entity.Bootcamp, error) {
	var bootcamps []entity.Bootcamp
	query := `SELECT` + bootcampColumns + ` FROM bootcamps ORDER BY date_debut DESC`
	if err := r.DB.SelectContext(ctx, &bootcamps, query); err != nil {
		logger.Error("BootcampRepository:GetAll", err)
		return nil, err
	}
	return bootcamps, nil
}

func (r *BootcampRepository) Update(ctx context.Context, bootcamp *entity.Bootcamp, productIDs []uuid.UUID) error {
	query := `
		UPDATE bootcamps
		SET name = $1, category_id = $2, types = $3, description = $4,
			images = $5, date_debut = $6, date_fin = $7, periode = $8,
			location = $9, price = $10, animator = $11, updated_at = now()
		WHERE id = $12
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		bootcamp.Name, bootcamp.CategoryID, bootcamp.Types, bootcamp.Description,
		bootcamp.Images, bootcamp.DateDebut, bootcamp.DateFin, bootcamp.Periode,
		bootcamp.Location, bootcamp.Price, bootcamp.Animator, bootcamp.ID,
	)
	if err != nil {
		logger.Error("BootcampRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}

	if productIDs != nil {
		return r.replaceProducts(ctx, bootcamp.ID, productIDs)
	}
	return nil
}

func (r *BootcampRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM bootcamps WHERE id = $1`, id)
	if err != nil {
		logger.Error("BootcampRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *BootcampRepository) GetProductIDs(ctx context.Context, bootcampID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT product_id FROM bootcamp_products WHERE bootcamp_id = $1`
	if err := r.DB.SelectContext(ctx, &ids, query, bootcampID); err != nil {
		logger.Error("BootcampRepository:GetProductIDs", err)
		return nil, err
	}
	return ids, nil
}

func (r *BootcampRepository) replaceProducts(ctx context.Context, bootcampID uuid.UUID, productIDs []uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM bootcamp_products WHERE bootcamp_id = $1`, bootcampID); err != nil {
		logger.Error("BootcampRepository:ReplaceProducts", err)
		return err
	}
	for _, pid := range productIDs {
		err := r.DB.ExecContext(ctx,
			`INSERT INTO bootcamp_products (bootcamp_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			bootcampID, pid)
		if err != nil {
			logger.Error("BootcampRepository:ReplaceProducts", err)
			return err
		}
	}
	return nil
}

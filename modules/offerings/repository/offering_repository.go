package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/offerings/entity"

	"github.com/google/uuid"
)

type OfferingRepositoryInterface interface {
	Create(ctx context.Context, offering *entity.Offering) (*entity.Offering, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error)
	GetAll(ctx context.Context) ([]entity.Offering, error)
	Update(ctx context.Context, offering *entity.Offering) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type OfferingRepository struct {
	DB database.IDatabase
}

func NewOfferingRepository(db database.IDatabase) *OfferingRepository {
	return &OfferingRepository{DB: db}
}

const offeringColumns = `
	id, name, description, category, price, duration, provider, is_active,
	created_at, updated_at`

func (r *OfferingRepository) Create(ctx context.Context, offering *entity.Offering) (*entity.Offering, error) {
	var created entity.Offering
	query := `
		INSERT INTO services (name, description, category, price, duration, provider, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + offeringColumns
	err := r.DB.GetContext(ctx, &created, query,
		offering.Name, offering.Description, offering.Category,
		offering.Price, offering.Duration, offering.Provider, offering.IsActive,
	)
	if err != nil {
		logger.Error("OfferingRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *OfferingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	var offering entity.Offering
	query := `SELECT` + offeringColumns + ` FROM services WHERE id = $1`
	err := r.DB.GetContext(ctx, &offering, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OfferingRepository:GetByID", err)
		return nil, err
	}
	return &offering, nil
}

func (r *OfferingRepository) GetAll(ctx context.Context) ([]entity.Offering, error) {
	var offerings []entity.Offering
	query := `SELECT` + offeringColumns + ` FROM services ORDER BY name`
	if err := r.DB.SelectContext(ctx, &offerings, query); err != nil {
		logger.Error("OfferingRepository:GetAll", err)
		return nil, err
	}
	return offerings, nil
}

func (r *OfferingRepository) Update(ctx context.Context, offering *entity.Offering) error {
	query := `
		UPDATE services
		SET name = $1, description = $2, category = $3, price = $4,
			duration = $5, provider = $6, is_active = $7, updated_at = now()
		WHERE id = $8
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		offering.Name, offering.Description, offering.Category,
		offering.Price, offering.Duration, offering.Provider,
		offering.IsActive, offering.ID,
	)
	if err != nil {
		logger.Error("OfferingRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *OfferingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		logger.Error("OfferingRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

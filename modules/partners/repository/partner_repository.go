package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/partners/entity"

	"github.com/google/uuid"
)

type PartnerRepositoryInterface interface {
	Create(ctx context.Context, partner *entity.Partner) (*entity.Partner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)
	GetAll(ctx context.Context) ([]entity.Partner, error)
	Update(ctx context.Context, partner *entity.Partner) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PartnerRepository struct {
	DB database.IDatabase
}

func NewPartnerRepository(db database.IDatabase) *PartnerRepository {
	return &PartnerRepository{DB: db}
}

const partnerColumns = `
	id, name, specialite, logo, website, created_at, updated_at`

func (r *PartnerRepository) Create(ctx context.Context, partner *entity.Partner) (*entity.Partner, error) {
	var created entity.Partner
	query := `
		INSERT INTO partners (name, specialite, logo, website)
		VALUES ($1, $2, $3, $4)
		RETURNING` + partnerColumns
	err := r.DB.GetContext(ctx, &created, query,
		partner.Name, partner.Specialite, partner.Logo, partner.Website,
	)
	if err != nil {
		logger.Error("PartnerRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	var partner entity.Partner
	query := `SELECT` + partnerColumns + ` FROM partners WHERE id = $1`
	err := r.DB.GetContext(ctx, &partner, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PartnerRepository:GetByID", err)
		return nil, err
	}
	return &partner, nil
}

func (r *PartnerRepository) GetAll(ctx context.Context) ([]entity.Partner, error) {
	var partners []entity.Partner
	query := `SELECT` + partnerColumns + ` FROM partners ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &partners, query); err != nil {
		logger.Error("PartnerRepository:GetAll", err)
		return nil, err
	}
	return partners, nil
}

func (r *PartnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	query := `
		UPDATE partners
		SET name = $1, specialite = $2, logo = $3, website = $4, updated_at = now()
		WHERE id = $5
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		partner.Name, partner.Specialite, partner.Logo, partner.Website, partner.ID,
	)
	if err != nil {
		logger.Error("PartnerRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		logger.Error("PartnerRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/reviews/entity"

	"github.com/google/uuid"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	GetAll(ctx context.Context) ([]entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReviewRepository struct {
	DB database.IDatabase
}

func NewReviewRepository(db database.IDatabase) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

const reviewColumns = `
	id, full_name, image, poste_actuelle, stars, message, created_at, updated_at`

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	var created entity.Review
	query := `
		INSERT INTO reviews (full_name, image, poste_actuelle, stars, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING` + reviewColumns
	err := r.DB.GetContext(ctx, &created, query,
		review.FullName, review.Image, review.PosteActuelle, review.Stars, review.Message,
	)
	if err != nil {
		logger.Error("ReviewRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	query := `SELECT` + reviewColumns + ` FROM reviews WHERE id = $1`
	err := r.DB.GetContext(ctx, &review, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReviewRepository:GetByID", err)
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]entity.Review, error) {
	var reviews []entity.Review
	query := `SELECT` + reviewColumns + ` FROM reviews ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &reviews, query); err != nil {
		logger.Error("ReviewRepository:GetAll", err)
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET full_name = $1, image = $2, poste_actuelle = $3, stars = $4,
			message = $5, updated_at = now()
		WHERE id = $6
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		review.FullName, review.Image, review.PosteActuelle, review.Stars,
		review.Message, review.ID,
	)
	if err != nil {
		logger.Error("ReviewRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		logger.Error("ReviewRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

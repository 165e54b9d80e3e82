package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/herosection/entity"

	"github.com/google/uuid"
)

type HeroSectionRepositoryInterface interface {
	Create(ctx context.Context, section *entity.HeroSection) (*entity.HeroSection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HeroSection, error)
	GetAll(ctx context.Context) ([]entity.HeroSection, error)
	Update(ctx context.Context, section *entity.HeroSection) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type HeroSectionRepository struct {
	DB database.IDatabase
}

func NewHeroSectionRepository(db database.IDatabase) *HeroSectionRepository {
	return &HeroSectionRepository{DB: db}
}

const heroSectionColumns = `
	id, title, description, images, buttons, created_at, updated_at`

func (r *HeroSectionRepository) Create(ctx context.Context, section *entity.HeroSection) (*entity.HeroSection, error) {
	var created entity.HeroSection
	query := `
		INSERT INTO hero_sections (title, description, images, buttons)
		VALUES ($1, $2, $3, $4)
		RETURNING` + heroSectionColumns
	err := r.DB.GetContext(ctx, &created, query,
		section.Title, section.Description, section.Images, section.Buttons,
	)
	if err != nil {
		logger.Error("HeroSectionRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *HeroSectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HeroSection, error) {
	var section entity.HeroSection
	query := `SELECT` + heroSectionColumns + ` FROM hero_sections WHERE id = $1`
	err := r.DB.GetContext(ctx, &section, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("HeroSectionRepository:GetByID", err)
		return nil, err
	}
	return &section, nil
}

func (r *HeroSectionRepository) GetAll(ctx context.Context) ([]entity.HeroSection, error) {
	var sections []entity.HeroSection
	query := `SELECT` + heroSectionColumns + ` FROM hero_sections ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &sections, query); err != nil {
		logger.Error("HeroSectionRepository:GetAll", err)
		return nil, err
	}
	return sections, nil
}

func (r *HeroSectionRepository) Update(ctx context.Context, section *entity.HeroSection) error {
	query := `
		UPDATE hero_sections
		SET title = $1, description = $2, images = $3, buttons = $4, updated_at = now()
		WHERE id = $5
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		section.Title, section.Description, section.Images, section.Buttons, section.ID,
	)
	if err != nil {
		logger.Error("HeroSectionRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *HeroSectionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM hero_sections WHERE id = $1`, id)
	if err != nil {
		logger.Error("HeroSectionRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

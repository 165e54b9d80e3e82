package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/workshops/dto"
	"makerskills-api/modules/workshops/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type WorkshopRepositoryInterface interface {
	Create(ctx context.Context, workshop *entity.Workshop, productIDs []uuid.UUID) (*entity.Workshop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)
	GetAll(ctx context.Context) ([]entity.Workshop, error)
	Update(ctx context.Context, workshop *entity.Workshop, productIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetParticipants(ctx context.Context, workshopIDs []uuid.UUID) (map[uuid.UUID][]dto.ParticipantSummary, error)
	GetProductIDs(ctx context.Context, workshopID uuid.UUID) ([]uuid.UUID, error)
}

type WorkshopRepository struct {
	DB database.IDatabase
}

func NewWorkshopRepository(db database.IDatabase) *WorkshopRepository {
	return &WorkshopRepository{DB: db}
}

const workshopColumns = `
	id, name, description, start_date, end_date, location, instructor,
	max_participants, price, cover_image, created_at, updated_at`

func (r *WorkshopRepository) Create(ctx context.Context, workshop *entity.Workshop, productIDs []uuid.UUID) (*entity.Workshop, error) {
	query := `
		INSERT INTO workshops (
			name, description, start_date, end_date, location, instructor,
			max_participants, price, cover_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING` + workshopColumns

	var created entity.Workshop
	err := r.DB.GetContext(ctx, &created, query,
		workshop.Name, workshop.Description, workshop.StartDate, workshop.EndDate,
		workshop.Location, workshop.Instructor, workshop.MaxParticipants,
		workshop.Price, workshop.CoverImage,
	)
	if err != nil {
		logger.Error("WorkshopRepository:Create", err)
		return nil, err
	}

	if err := r.replaceProducts(ctx, created.ID, productIDs); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	var workshop entity.Workshop
	query := `SELECT` + workshopColumns + ` FROM workshops WHERE id = $1`
	err := r.DB.GetContext(ctx, &workshop, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("WorkshopRepository:GetByID", err)
		return nil, err
	}
	return &workshop, nil
}

func (r *WorkshopRepository) GetAll(ctx context.Context) ([]entity.Workshop, error) {
	var workshops []entity.Workshop
	query := `SELECT` + workshopColumns + ` FROM workshops ORDER BY start_date`
	if err := r.DB.SelectContext(ctx, &workshops, query); err != nil {
		logger.Error("WorkshopRepository:GetAll", err)
		return nil, err
	}
	return workshops, nil
}

func (r *WorkshopRepository) Update(ctx context.Context, workshop *entity.Workshop, productIDs []uuid.UUID) error {
	query := `
		UPDATE workshops
		SET name = $1, description = $2, start_date = $3, end_date = $4,
			location = $5, instructor = $6, max_participants = $7,
			price = $8, cover_image = $9, updated_at = now()
		WHERE id = $10
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		workshop.Name, workshop.Description, workshop.StartDate, workshop.EndDate,
		workshop.Location, workshop.Instructor, workshop.MaxParticipants,
		workshop.Price, workshop.CoverImage, workshop.ID,
	)
	if err != nil {
		logger.Error("WorkshopRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}

	if productIDs != nil {
		return r.replaceProducts(ctx, workshop.ID, productIDs)
	}
	return nil
}

func (r *WorkshopRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM workshops WHERE id = $1`, id)
	if err != nil {
		logger.Error("WorkshopRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *WorkshopRepository) GetParticipants(ctx context.Context, workshopIDs []uuid.UUID) (map[uuid.UUID][]dto.ParticipantSummary, error) {
	if len(workshopIDs) == 0 {
		return map[uuid.UUID][]dto.ParticipantSummary{}, nil
	}

	type row struct {
		WorkshopID uuid.UUID `db:"workshop_id"`
		ID         uuid.UUID `db:"id"`
		FirstName  string    `db:"first_name"`
		LastName   string    `db:"last_name"`
		Email      string    `db:"email"`
	}

	var rows []row
	query := `
		SELECT wp.workshop_id, p.id, p.first_name, p.last_name, p.email
		FROM workshop_participants wp
		JOIN participants p ON p.id = wp.participant_id
		WHERE wp.workshop_id = ANY($1)
		ORDER BY p.created_at
	`
	if err := r.DB.SelectContext(ctx, &rows, query, pq.Array(workshopIDs)); err != nil {
		logger.Error("WorkshopRepository:GetParticipants", err)
		return nil, err
	}

	result := make(map[uuid.UUID][]dto.ParticipantSummary, len(workshopIDs))
	for _, rw := range rows {
		result[rw.WorkshopID] = append(result[rw.WorkshopID], dto.ParticipantSummary{
			ID:        rw.ID,
			FirstName: rw.FirstName,
			LastName:  rw.LastName,
			Email:     rw.Email,
		})
	}
	return result, nil
}

func (r *WorkshopRepository) GetProductIDs(ctx context.Context, workshopID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT product_id FROM workshop_products WHERE workshop_id = $1`
	if err := r.DB.SelectContext(ctx, &ids, query, workshopID); err != nil {
		logger.Error("WorkshopRepository:GetProductIDs", err)
		return nil, err
	}
	return ids, nil
}

func (r *WorkshopRepository) replaceProducts(ctx context.Context, workshopID uuid.UUID, productIDs []uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM workshop_products WHERE workshop_id = $1`, workshopID); err != nil {
		logger.Error("WorkshopRepository:ReplaceProducts", err)
		return err
	}
	for _, pid := range productIDs {
		err := r.DB.ExecContext(ctx,
			`INSERT INTO workshop_products (workshop_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			workshopID, pid)
		if err != nil {
			logger.Error("WorkshopRepository:ReplaceProducts", err)
			return err
		}
	}
	return nil
}

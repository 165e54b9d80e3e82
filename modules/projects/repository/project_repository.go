package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/projects/entity"

	"github.com/google/uuid"
)

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	GetAll(ctx context.Context) ([]entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProjectRepository struct {
	DB database.IDatabase
}

func NewProjectRepository(db database.IDatabase) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

const projectColumns = `
	id, name, description, status, start_date, end_date, budget, client,
	created_at, updated_at`

func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	var created entity.Project
	query := `
		INSERT INTO projects (name, description, status, start_date, end_date, budget, client)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + projectColumns
	err := r.DB.GetContext(ctx, &created, query,
		project.Name, project.Description, project.Status,
		project.StartDate, project.EndDate, project.Budget, project.Client,
	)
	if err != nil {
		logger.Error("ProjectRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	query := `SELECT` + projectColumns + ` FROM projects WHERE id = $1`
	err := r.DB.GetContext(ctx, &project, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProjectRepository:GetByID", err)
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	query := `SELECT` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &projects, query); err != nil {
		logger.Error("ProjectRepository:GetAll", err)
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = $2, status = $3, start_date = $4,
			end_date = $5, budget = $6, client = $7, updated_at = now()
		WHERE id = $8
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		project.Name, project.Description, project.Status,
		project.StartDate, project.EndDate, project.Budget, project.Client,
		project.ID,
	)
	if err != nil {
		logger.Error("ProjectRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		logger.Error("ProjectRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

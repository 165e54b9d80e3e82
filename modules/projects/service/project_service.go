package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/projects/dto"
	"makerskills-api/modules/projects/entity"
	"makerskills-api/modules/projects/repository"

	"github.com/google/uuid"
)

type ProjectServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*entity.Project, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.Project, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Project, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*entity.Project, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type ProjectService struct {
	repo repository.ProjectRepositoryInterface
}

func NewProjectService(repo repository.ProjectRepositoryInterface) *ProjectService {
	return &ProjectService{repo: repo}
}

func (service *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*entity.Project, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	project := &entity.Project{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Budget:    req.Budget,
	}
	if req.Description != "" {
		project.Description = &req.Description
	}
	if req.Status != "" {
		project.Status = &req.Status
	}
	if req.Client != "" {
		project.Client = &req.Client
	}

	created, err := service.repo.Create(ctx, project)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create project: "+err.Error(), err)
	}
	return created, nil
}

func (service *ProjectService) FindAll(ctx context.Context) ([]entity.Project, *errors.AppError) {
	projects, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve projects", err)
	}
	if projects == nil {
		projects = []entity.Project{}
	}
	return projects, nil
}

func (service *ProjectService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Project, *errors.AppError) {
	project, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "project not found", nil)
	}
	return project, nil
}

func (service *ProjectService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*entity.Project, *errors.AppError) {
	project, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "project not found", nil)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		project.Status = req.Status
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Client != nil {
		project.Client = req.Client
	}

	if err := service.repo.Update(ctx, project); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "project not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update project: "+err.Error(), err)
	}
	return project, nil
}

func (service *ProjectService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete project", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "project not found", nil)
	}
	return nil
}

package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/categories/dto"
	"makerskills-api/modules/categories/entity"
	"makerskills-api/modules/categories/repository"

	"github.com/google/uuid"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*entity.Category, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.Category, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Category, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*entity.Category, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type CategoryService struct {
	repo repository.CategoryRepositoryInterface
}

func NewCategoryService(repo repository.CategoryRepositoryInterface) *CategoryService {
	return &CategoryService{repo: repo}
}

func (service *CategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*entity.Category, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	category := &entity.Category{Name: req.Name}
	if req.Description != "" {
		category.Description = &req.Description
	}
	if req.Type != "" {
		categoryType := entity.CategoryType(req.Type)
		if !categoryType.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category type", nil)
		}
		category.Type = &categoryType
	}

	created, err := service.repo.Create(ctx, category)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create category: "+err.Error(), err)
	}
	return created, nil
}

func (service *CategoryService) FindAll(ctx context.Context) ([]entity.Category, *errors.AppError) {
	categories, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve categories", err)
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return categories, nil
}

func (service *CategoryService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Category, *errors.AppError) {
	category, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve category", err)
	}
	if category == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "category not found", nil)
	}
	return category, nil
}

func (service *CategoryService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*entity.Category, *errors.AppError) {
	category, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve category", err)
	}
	if category == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "category not found", nil)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Type != nil {
		categoryType := entity.CategoryType(*req.Type)
		if !categoryType.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category type", nil)
		}
		category.Type = &categoryType
	}

	if err := service.repo.Update(ctx, category); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "category not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update category: "+err.Error(), err)
	}
	return category, nil
}

func (service *CategoryService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete category", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "category not found", nil)
	}
	return nil
}

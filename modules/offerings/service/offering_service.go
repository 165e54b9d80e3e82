package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/offerings/dto"
	"makerskills-api/modules/offerings/entity"
	"makerskills-api/modules/offerings/repository"

	"github.com/google/uuid"
)

type OfferingServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateOfferingRequest) (*entity.Offering, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.Offering, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Offering, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOfferingRequest) (*entity.Offering, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type OfferingService struct {
	repo repository.OfferingRepositoryInterface
}

func NewOfferingService(repo repository.OfferingRepositoryInterface) *OfferingService {
	return &OfferingService{repo: repo}
}

func (service *OfferingService) Create(ctx context.Context, req *dto.CreateOfferingRequest) (*entity.Offering, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	offering := &entity.Offering{
		Name:     req.Name,
		Price:    req.Price,
		IsActive: true,
	}
	if req.Description != "" {
		offering.Description = &req.Description
	}
	if req.Category != "" {
		offering.Category = &req.Category
	}
	if req.Duration != "" {
		offering.Duration = &req.Duration
	}
	if req.Provider != "" {
		offering.Provider = &req.Provider
	}
	if req.IsActive != nil {
		offering.IsActive = *req.IsActive
	}

	created, err := service.repo.Create(ctx, offering)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create service: "+err.Error(), err)
	}
	return created, nil
}

func (service *OfferingService) FindAll(ctx context.Context) ([]entity.Offering, *errors.AppError) {
	offerings, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve services", err)
	}
	if offerings == nil {
		offerings = []entity.Offering{}
	}
	return offerings, nil
}

func (service *OfferingService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Offering, *errors.AppError) {
	offering, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve service", err)
	}
	if offering == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "service not found", nil)
	}
	return offering, nil
}

func (service *OfferingService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOfferingRequest) (*entity.Offering, *errors.AppError) {
	offering, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve service", err)
	}
	if offering == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "service not found", nil)
	}

	if req.Name != nil {
		offering.Name = *req.Name
	}
	if req.Description != nil {
		offering.Description = req.Description
	}
	if req.Category != nil {
		offering.Category = req.Category
	}
	if req.Price != nil {
		offering.Price = req.Price
	}
	if req.Duration != nil {
		offering.Duration = req.Duration
	}
	if req.Provider != nil {
		offering.Provider = req.Provider
	}
	if req.IsActive != nil {
		offering.IsActive = *req.IsActive
	}

	if err := service.repo.Update(ctx, offering); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "service not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update service: "+err.Error(), err)
	}
	return offering, nil
}

func (service *OfferingService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete service", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "service not found", nil)
	}
	return nil
}

package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/partners/dto"
	"makerskills-api/modules/partners/entity"
	"makerskills-api/modules/partners/repository"

	"github.com/google/uuid"
)

type PartnerServiceInterface interface {
	Create(ctx context.Context, req *dto.CreatePartnerRequest) (*entity.Partner, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.Partner, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Partner, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePartnerRequest) (*entity.Partner, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) (*entity.Partner, *errors.AppError)
}

type PartnerService struct {
	repo repository.PartnerRepositoryInterface
}

func NewPartnerService(repo repository.PartnerRepositoryInterface) *PartnerService {
	return &PartnerService{repo: repo}
}

func (service *PartnerService) Create(ctx context.Context, req *dto.CreatePartnerRequest) (*entity.Partner, *errors.AppError) {
	if req.Name == "" || req.Specialite == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name and specialite are required", nil)
	}

	partner := &entity.Partner{
		Name:       req.Name,
		Specialite: req.Specialite,
	}
	if req.Logo != "" {
		partner.Logo = &req.Logo
	}
	if req.Website != "" {
		partner.Website = &req.Website
	}

	created, err := service.repo.Create(ctx, partner)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create partner: "+err.Error(), err)
	}
	return created, nil
}

func (service *PartnerService) FindAll(ctx context.Context) ([]entity.Partner, *errors.AppError) {
	partners, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve partners", err)
	}
	if partners == nil {
		partners = []entity.Partner{}
	}
	return partners, nil
}

func (service *PartnerService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Partner, *errors.AppError) {
	partner, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve partner", err)
	}
	if partner == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "partner not found", nil)
	}
	return partner, nil
}

func (service *PartnerService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePartnerRequest) (*entity.Partner, *errors.AppError) {
	partner, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve partner", err)
	}
	if partner == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "partner not found", nil)
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Specialite != nil {
		partner.Specialite = *req.Specialite
	}
	if req.Logo != nil {
		partner.Logo = req.Logo
	}
	if req.Website != nil {
		partner.Website = req.Website
	}

	if err := service.repo.Update(ctx, partner); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "partner not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update partner: "+err.Error(), err)
	}
	return partner, nil
}

func (service *PartnerService) Remove(ctx context.Context, id uuid.UUID) (*entity.Partner, *errors.AppError) {
	partner, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve partner", err)
	}
	if partner == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "partner not found", nil)
	}

	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to delete partner", err)
	}
	if !deleted {
		return nil, errors.NewAppError(errors.ErrNotFound, "partner not found", nil)
	}
	return partner, nil
}

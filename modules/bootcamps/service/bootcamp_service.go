package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/bootcamps/dto"
	"makerskills-api/modules/bootcamps/entity"
	"makerskills-api/modules/bootcamps/repository"

	"github.com/google/uuid"
)

type BootcampServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateBootcampRequest) (*dto.BootcampResponse, *errors.AppError)
	FindAll(ctx context.Context) ([]dto.BootcampResponse, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.BootcampResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBootcampRequest) (*dto.BootcampResponse, []string, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) (*entity.Bootcamp, *errors.AppError)
}

type BootcampService struct {
	repo repository.BootcampRepositoryInterface
}

func NewBootcampService(repo repository.BootcampRepositoryInterface) *BootcampService {
	return &BootcampService{repo: repo}
}

func (service *BootcampService) Create(ctx context.Context, req *dto.CreateBootcampRequest) (*dto.BootcampResponse, *errors.AppError) {
	if req.Name == "" || req.Location == "" || req.Price == "" || req.Animator == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name, location, price and animator are required", nil)
	}
	if req.DateDebut == nil || req.DateFin == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "start and end dates are required", nil)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category ID", err)
	}

	bootcamp := &entity.Bootcamp{
		Name:       req.Name,
		CategoryID: categoryID,
		Types:      req.Types,
		Images:     req.Images,
		DateDebut:  *req.DateDebut,
		DateFin:    *req.DateFin,
		Location:   req.Location,
		Price:      req.Price,
		Animator:   req.Animator,
	}
	if bootcamp.Types == nil {
		bootcamp.Types = []string{}
	}
	if bootcamp.Images == nil {
		bootcamp.Images = []string{}
	}
	if req.Description != "" {
		bootcamp.Description = &req.Description
	}
	if req.Periode != "" {
		bootcamp.Periode = &req.Periode
	}

	productIDs, appErr := parseProductIDs(req.Products)
	if appErr != nil {
		return nil, appErr
	}

	created, err := service.repo.Create(ctx, bootcamp, productIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create bootcamp: "+err.Error(), err)
	}
	return service.toResponse(ctx, created)
}

func (service *BootcampService) FindAll(ctx context.Context) ([]dto.BootcampResponse, *errors.AppError) {
	bootcamps, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve bootcamps", err)
	}

	responses := make([]dto.BootcampResponse, 0, len(bootcamps))
	for i := range bootcamps {
		resp, appErr := service.toResponse(ctx, &bootcamps[i])
		if appErr != nil {
			return nil, appErr
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (service *BootcampService) FindOne(ctx context.Context, id uuid.UUID) (*dto.BootcampResponse, *errors.AppError) {
	bootcamp, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve bootcamp", err)
	}
	if bootcamp == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "bootcamp not found", nil)
	}
	return service.toResponse(ctx, bootcamp)
}

func (service *BootcampService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBootcampRequest) (*dto.BootcampResponse, []string, *errors.AppError) {
	bootcamp, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve bootcamp", err)
	}
	if bootcamp == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "bootcamp not found", nil)
	}

	var replaced []string
	if req.Name != nil {
		bootcamp.Name = *req.Name
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category ID", err)
		}
		bootcamp.CategoryID = categoryID
	}
	if req.Types != nil {
		bootcamp.Types = req.Types
	}
	if req.Description != nil {
		bootcamp.Description = req.Description
	}
	if req.Images != nil {
		replaced = append(replaced, bootcamp.Images...)
		bootcamp.Images = req.Images
	}
	if req.DateDebut != nil {
		bootcamp.DateDebut = *req.DateDebut
	}
	if req.DateFin != nil {
		bootcamp.DateFin = *req.DateFin
	}
	if req.Periode != nil {
		bootcamp.Periode = req.Periode
	}
	if req.Location != nil {
		bootcamp.Location = *req.Location
	}
	if req.Price != nil {
		bootcamp.Price = *req.Price
	}
	if req.Animator != nil {
		bootcamp.Animator = *req.Animator
	}

	var productIDs []uuid.UUID
	if req.Products != nil {
		parsed, appErr := parseProductIDs(req.Products)
		if appErr != nil {
			return nil, nil, appErr
		}
		if parsed == nil {
			parsed = []uuid.UUID{}
		}
		productIDs = parsed
	}

	if err := service.repo.Update(ctx, bootcamp, productIDs); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, errors.NewAppError(errors.ErrNotFound, "bootcamp not found", nil)
		}
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update bootcamp: "+err.Error(), err)
	}

	resp, appErr := service.toResponse(ctx, bootcamp)
	if appErr != nil {
		return nil, nil, appErr
	}
	return resp, replaced, nil
}

func (service *BootcampService) Remove(ctx context.Context, id uuid.UUID) (*entity.Bootcamp, *errors.AppError) {
	bootcamp, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve bootcamp", err)
	}
	if bootcamp == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "bootcamp not found", nil)
	}

	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to delete bootcamp", err)
	}
	if !deleted {
		return nil, errors.NewAppError(errors.ErrNotFound, "bootcamp not found", nil)
	}
	return bootcamp, nil
}

func (service *BootcampService) toResponse(ctx context.Context, bootcamp *entity.Bootcamp) (*dto.BootcampResponse, *errors.AppError) {
	products, err := service.repo.GetProductIDs(ctx, bootcamp.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve bootcamp products", err)
	}
	if products == nil {
		products = []uuid.UUID{}
	}
	return &dto.BootcampResponse{Bootcamp: *bootcamp, Products: products}, nil
}

func parseProductIDs(values []string) ([]uuid.UUID, *errors.AppError) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid product ID", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

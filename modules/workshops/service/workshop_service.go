package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/workshops/dto"
	"makerskills-api/modules/workshops/entity"
	"makerskills-api/modules/workshops/repository"

	"github.com/google/uuid"
)

type WorkshopServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, *errors.AppError)
	FindAll(ctx context.Context) ([]dto.WorkshopResponse, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.WorkshopResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateWorkshopRequest) (*dto.WorkshopResponse, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type WorkshopService struct {
	repo repository.WorkshopRepositoryInterface
}

func NewWorkshopService(repo repository.WorkshopRepositoryInterface) *WorkshopService {
	return &WorkshopService{repo: repo}
}

func (service *WorkshopService) Create(ctx context.Context, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}
	if req.StartDate == nil || req.EndDate == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "start and end dates are required", nil)
	}
	if req.EndDate.Before(*req.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end date precedes start date", nil)
	}
	if req.Location == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "location is required", nil)
	}

	workshop := &entity.Workshop{
		Name:            req.Name,
		StartDate:       *req.StartDate,
		EndDate:         *req.EndDate,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
	}
	if req.Description != "" {
		workshop.Description = &req.Description
	}
	if req.Instructor != "" {
		workshop.Instructor = &req.Instructor
	}
	if req.CoverImage != "" {
		workshop.CoverImage = &req.CoverImage
	}

	productIDs, appErr := parseProductIDs(req.SuggestedProducts)
	if appErr != nil {
		return nil, appErr
	}

	created, err := service.repo.Create(ctx, workshop, productIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create workshop: "+err.Error(), err)
	}
	return service.toResponse(ctx, created)
}

func (service *WorkshopService) FindAll(ctx context.Context) ([]dto.WorkshopResponse, *errors.AppError) {
	workshops, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve workshops", err)
	}

	ids := make([]uuid.UUID, 0, len(workshops))
	for _, w := range workshops {
		ids = append(ids, w.ID)
	}
	rosters, err := service.repo.GetParticipants(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participants", err)
	}

	responses := make([]dto.WorkshopResponse, 0, len(workshops))
	for i := range workshops {
		resp := toWorkshopResponse(&workshops[i])
		resp.Participants = rosters[workshops[i].ID]
		if resp.Participants == nil {
			resp.Participants = []dto.ParticipantSummary{}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (service *WorkshopService) FindOne(ctx context.Context, id uuid.UUID) (*dto.WorkshopResponse, *errors.AppError) {
	workshop, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve workshop", err)
	}
	if workshop == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "workshop not found", nil)
	}
	return service.toResponse(ctx, workshop)
}

func (service *WorkshopService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateWorkshopRequest) (*dto.WorkshopResponse, *errors.AppError) {
	workshop, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve workshop", err)
	}
	if workshop == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "workshop not found", nil)
	}

	if req.Name != nil {
		workshop.Name = *req.Name
	}
	if req.Description != nil {
		workshop.Description = req.Description
	}
	if req.StartDate != nil {
		workshop.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		workshop.EndDate = *req.EndDate
	}
	if workshop.EndDate.Before(workshop.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end date precedes start date", nil)
	}
	if req.Location != nil {
		workshop.Location = *req.Location
	}
	if req.Instructor != nil {
		workshop.Instructor = req.Instructor
	}
	if req.MaxParticipants != nil {
		workshop.MaxParticipants = req.MaxParticipants
	}
	if req.Price != nil {
		workshop.Price = req.Price
	}
	if req.CoverImage != nil {
		workshop.CoverImage = req.CoverImage
	}

	var productIDs []uuid.UUID
	if req.SuggestedProducts != nil {
		parsed, appErr := parseProductIDs(req.SuggestedProducts)
		if appErr != nil {
			return nil, appErr
		}
		if parsed == nil {
			parsed = []uuid.UUID{}
		}
		productIDs = parsed
	}

	if err := service.repo.Update(ctx, workshop, productIDs); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "workshop not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update workshop: "+err.Error(), err)
	}
	return service.toResponse(ctx, workshop)
}

func (service *WorkshopService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete workshop", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "workshop not found", nil)
	}
	return nil
}

func (service *WorkshopService) toResponse(ctx context.Context, workshop *entity.Workshop) (*dto.WorkshopResponse, *errors.AppError) {
	resp := toWorkshopResponse(workshop)

	rosters, err := service.repo.GetParticipants(ctx, []uuid.UUID{workshop.ID})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participants", err)
	}
	resp.Participants = rosters[workshop.ID]
	if resp.Participants == nil {
		resp.Participants = []dto.ParticipantSummary{}
	}

	products, err := service.repo.GetProductIDs(ctx, workshop.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve suggested products", err)
	}
	resp.SuggestedProducts = products
	if resp.SuggestedProducts == nil {
		resp.SuggestedProducts = []uuid.UUID{}
	}
	return &resp, nil
}

func toWorkshopResponse(workshop *entity.Workshop) dto.WorkshopResponse {
	resp := dto.WorkshopResponse{
		ID:                workshop.ID,
		Name:              workshop.Name,
		StartDate:         workshop.StartDate,
		EndDate:           workshop.EndDate,
		Location:          workshop.Location,
		MaxParticipants:   workshop.MaxParticipants,
		Price:             workshop.Price,
		SuggestedProducts: []uuid.UUID{},
		Participants:      []dto.ParticipantSummary{},
		CreatedAt:         workshop.CreatedAt,
		UpdatedAt:         workshop.UpdatedAt,
	}
	if workshop.Description != nil {
		resp.Description = *workshop.Description
	}
	if workshop.Instructor != nil {
		resp.Instructor = *workshop.Instructor
	}
	if workshop.CoverImage != nil {
		resp.CoverImage = *workshop.CoverImage
	}
	return resp
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

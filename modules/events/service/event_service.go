package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/constants"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/modules/events/dto"
	"makerskills-api/modules/events/entity"
	"makerskills-api/modules/events/repository"

	"github.com/google/uuid"
)

type EventServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	FindAll(ctx context.Context) ([]dto.EventResponse, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type EventService struct {
	repo repository.EventRepositoryInterface
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo}
}

func (service *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	event, productIDs, appErr := service.fromCreateRequest(req)
	if appErr != nil {
		return nil, appErr
	}

	created, err := service.repo.Create(ctx, event, productIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create event: "+err.Error(), err)
	}
	return service.toResponse(ctx, created)
}

func (service *EventService) FindAll(ctx context.Context) ([]dto.EventResponse, *errors.AppError) {
	events, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve events", err)
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	rosters, err := service.repo.GetParticipants(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participants", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp := toEventResponse(&events[i])
		resp.Participants = rosters[events[i].ID]
		if resp.Participants == nil {
			resp.Participants = []dto.ParticipantSummary{}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (service *EventService) FindOne(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return service.toResponse(ctx, event)
}

func (service *EventService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	productIDs, appErr := service.applyUpdate(event, req)
	if appErr != nil {
		return nil, appErr
	}

	if err := service.repo.Update(ctx, event, productIDs); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update event: "+err.Error(), err)
	}
	return service.toResponse(ctx, event)
}

func (service *EventService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return nil
}

func (service *EventService) fromCreateRequest(req *dto.CreateEventRequest) (*entity.Event, []uuid.UUID, *errors.AppError) {
	if req.Name == "" {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}
	if req.CoverImage == "" {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "cover image is required", nil)
	}

	eventType := entity.EventType(req.Type)
	if !eventType.Valid() {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event type", nil)
	}

	location := entity.EventLocationOnline
	if req.Location != "" {
		location = entity.EventLocation(req.Location)
		if !location.Valid() {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event location", nil)
		}
	}

	event := &entity.Event{
		Name:            req.Name,
		Type:            eventType,
		Price:           req.Price,
		Reduction:       req.Reduction,
		StartDate:       req.StartDate,
		Location:        location,
		Certification:   req.Certification,
		CoverImage:      req.CoverImage,
		Objectives:      req.Objectives,
		Required:        req.Required,
		Included:        req.Included,
		MaxParticipants: req.MaxParticipants,
	}
	setOptional(&event.Description, req.Description)
	setOptional(&event.Duration, req.Duration)
	setOptional(&event.Periode, req.Periode)
	setOptional(&event.Animator, req.Animator)
	setOptional(&event.Address, req.Address)

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category ID", err)
		}
		event.CategoryID = &categoryID
	}

	productIDs, appErr := parseUUIDs(req.Products)
	if appErr != nil {
		return nil, nil, appErr
	}
	return event, productIDs, nil
}

func (service *EventService) applyUpdate(event *entity.Event, req *dto.UpdateEventRequest) ([]uuid.UUID, *errors.AppError) {
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Type != nil {
		eventType := entity.EventType(*req.Type)
		if !eventType.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event type", nil)
		}
		event.Type = eventType
	}
	if req.Location != nil {
		location := entity.EventLocation(*req.Location)
		if !location.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event location", nil)
		}
		event.Location = location
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Price != nil {
		event.Price = req.Price
	}
	if req.Reduction != nil {
		event.Reduction = req.Reduction
	}
	if req.Duration != nil {
		event.Duration = req.Duration
	}
	if req.StartDate != nil {
		event.StartDate = req.StartDate
	}
	if req.Periode != nil {
		event.Periode = req.Periode
	}
	if req.Animator != nil {
		event.Animator = req.Animator
	}
	if req.Address != nil {
		event.Address = req.Address
	}
	if req.Certification != nil {
		event.Certification = *req.Certification
	}
	if req.CoverImage != nil {
		event.CoverImage = *req.CoverImage
	}
	if req.Objectives != nil {
		event.Objectives = req.Objectives
	}
	if req.Required != nil {
		event.Required = req.Required
	}
	if req.Included != nil {
		event.Included = req.Included
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = req.MaxParticipants
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			event.CategoryID = nil
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category ID", err)
			}
			event.CategoryID = &categoryID
		}
	}

	if req.Products == nil {
		return nil, nil
	}
	return parseUUIDsOrError(req.Products)
}

func (service *EventService) toResponse(ctx context.Context, event *entity.Event) (*dto.EventResponse, *errors.AppError) {
	resp := toEventResponse(event)

	rosters, err := service.repo.GetParticipants(ctx, []uuid.UUID{event.ID})
	if err != nil {
		logger.Error("EventService:ToResponse:GetParticipants", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participants", err)
	}
	resp.Participants = rosters[event.ID]
	if resp.Participants == nil {
		resp.Participants = []dto.ParticipantSummary{}
	}

	products, err := service.repo.GetProductIDs(ctx, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve event products", err)
	}
	resp.Products = products
	if resp.Products == nil {
		resp.Products = []uuid.UUID{}
	}
	return &resp, nil
}

func toEventResponse(event *entity.Event) dto.EventResponse {
	resp := dto.EventResponse{
		ID:              event.ID,
		Name:            event.Name,
		Type:            string(event.Type),
		Price:           event.Price,
		Reduction:       event.Reduction,
		StartDate:       event.StartDate,
		Location:        string(event.Location),
		Certification:   event.Certification,
		CoverImage:      event.CoverImage,
		Objectives:      event.Objectives,
		Required:        event.Required,
		Included:        event.Included,
		MaxParticipants: event.MaxParticipants,
		CategoryID:      event.CategoryID,
		Products:        []uuid.UUID{},
		Participants:    []dto.ParticipantSummary{},
		CreatedAt:       event.CreatedAt,
		UpdatedAt:       event.UpdatedAt,
	}
	if event.Description != nil {
		resp.Description = *event.Description
	}
	if event.Duration != nil {
		resp.Duration = *event.Duration
	}
	if event.Periode != nil {
		resp.Periode = *event.Periode
	}
	if event.Animator != nil {
		resp.Animator = *event.Animator
	}
	if event.Address != nil {
		resp.Address = *event.Address
	}
	return resp
}

func setOptional(dst **string, value string) {
	if value != "" {
		*dst = &value
	}
}

func parseUUIDs(values []string) ([]uuid.UUID, *errors.AppError) {
	if len(values) == 0 {
		return nil, nil
	}
	return parseUUIDsOrError(values)
}

func parseUUIDsOrError(values []string) ([]uuid.UUID, *errors.AppError) {
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

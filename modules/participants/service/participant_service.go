package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"makerskills-api/core/config"
	"makerskills-api/core/errors"
	"makerskills-api/core/utils"
	eventsrepo "makerskills-api/modules/events/repository"
	"makerskills-api/modules/participants/dto"
	"makerskills-api/modules/participants/entity"
	"makerskills-api/modules/participants/repository"
	workshopsrepo "makerskills-api/modules/workshops/repository"

	"github.com/google/uuid"
)

type ParticipantServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.RegistrationResponse, *errors.AppError)
	FindAll(ctx context.Context) ([]dto.EventGroup, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Participant, *errors.AppError)
	FindByEvent(ctx context.Context, eventID string) ([]entity.Participant, *errors.AppError)
	FindEventsByEmail(ctx context.Context, email string) (*dto.ParticipantEventsResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateParticipantRequest) (*entity.Participant, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

type ParticipantService struct {
	repo      repository.ParticipantRepositoryInterface
	events    eventsrepo.EventRepositoryInterface
	workshops workshopsrepo.WorkshopRepositoryInterface
}

func NewParticipantService(
	repo repository.ParticipantRepositoryInterface,
	events eventsrepo.EventRepositoryInterface,
	workshops workshopsrepo.WorkshopRepositoryInterface,
) *ParticipantService {
	return &ParticipantService{repo: repo, events: events, workshops: workshops}
}

// Register signs a participant up against exactly one parent context.
// With no parent id the participant is created standalone. Duplicate
// signups fail with Conflict whether caught by the pre-check or by the
// unique index after a race.
func (service *ParticipantService) Register(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.RegistrationResponse, *errors.AppError) {
	participant, appErr := service.fromRequest(req)
	if appErr != nil {
		return nil, appErr
	}

	if req.EventID != "" && req.WorkshopID != "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "a participant belongs to an event or a workshop, not both", nil)
	}

	switch {
	case req.EventID != "":
		return service.registerForEvent(ctx, participant, req.EventID)
	case req.WorkshopID != "":
		return service.registerForWorkshop(ctx, participant, req.WorkshopID)
	default:
		created, err := service.repo.Create(ctx, participant)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create participant", err)
		}
		return &dto.RegistrationResponse{Participant: created}, nil
	}
}

func (service *ParticipantService) registerForEvent(ctx context.Context, participant *entity.Participant, rawEventID string) (*dto.RegistrationResponse, *errors.AppError) {
	eventID, err := uuid.Parse(rawEventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event ID", err)
	}

	event, err := service.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	exists, err := service.repo.ExistsForEvent(ctx, eventID, participant.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to check existing registration", err)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyExists,
			"email "+participant.Email+" is already registered for this event: "+event.Name, nil)
	}

	if appErr := service.checkCapacity(ctx, event.MaxParticipants, func() (int, error) {
		return service.repo.CountByEvent(ctx, eventID)
	}); appErr != nil {
		return nil, appErr
	}

	participant.EventID = &eventID
	created, err := service.repo.RegisterForEvent(ctx, participant, eventID)
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicateRegistration) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists,
				"email "+participant.Email+" is already registered for this event: "+event.Name, err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to register participant", err)
	}

	return &dto.RegistrationResponse{
		Participant: created,
		Event:       &dto.ParentSummary{ID: event.ID, Name: event.Name},
	}, nil
}

func (service *ParticipantService) registerForWorkshop(ctx context.Context, participant *entity.Participant, rawWorkshopID string) (*dto.RegistrationResponse, *errors.AppError) {
	workshopID, err := uuid.Parse(rawWorkshopID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid workshop ID", err)
	}

	workshop, err := service.workshops.GetByID(ctx, workshopID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load workshop", err)
	}
	if workshop == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "workshop not found", nil)
	}

	exists, err := service.repo.ExistsForWorkshop(ctx, workshopID, participant.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to check existing registration", err)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyExists,
			"email "+participant.Email+" is already registered for this workshop: "+workshop.Name, nil)
	}

	if appErr := service.checkCapacity(ctx, workshop.MaxParticipants, func() (int, error) {
		return service.repo.CountByWorkshop(ctx, workshopID)
	}); appErr != nil {
		return nil, appErr
	}

	participant.WorkshopID = &workshopID
	created, err := service.repo.RegisterForWorkshop(ctx, participant, workshopID)
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicateRegistration) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists,
				"email "+participant.Email+" is already registered for this workshop: "+workshop.Name, err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to register participant", err)
	}

	return &dto.RegistrationResponse{
		Participant: created,
		Workshop:    &dto.ParentSummary{ID: workshop.ID, Name: workshop.Name},
	}, nil
}

// checkCapacity enforces maxParticipants when the parent sets one and
// enforcement is switched on in configuration.
func (service *ParticipantService) checkCapacity(ctx context.Context, limit *int, count func() (int, error)) *errors.AppError {
	if limit == nil {
		return nil
	}
	if cfg, ok := config.GetSafe(); ok && !cfg.Registration.EnforceCapacity {
		return nil
	}
	n, err := count()
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "failed to count registrations", err)
	}
	if n >= *limit {
		return errors.NewAppError(errors.ErrInvalidInput, "registration is full", nil)
	}
	return nil
}

func (service *ParticipantService) FindAll(ctx context.Context) ([]dto.EventGroup, *errors.AppError) {
	groups, err := service.repo.GroupedByEvent(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participants", err)
	}
	return groups, nil
}

func (service *ParticipantService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Participant, *errors.AppError) {
	participant, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "participant not found", nil)
	}
	return participant, nil
}

func (service *ParticipantService) FindByEvent(ctx context.Context, rawEventID string) ([]entity.Participant, *errors.AppError) {
	eventID, err := uuid.Parse(rawEventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid event ID", err)
	}

	participants, err := service.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participants", err)
	}
	if participants == nil {
		participants = []entity.Participant{}
	}
	return participants, nil
}

func (service *ParticipantService) FindEventsByEmail(ctx context.Context, email string) (*dto.ParticipantEventsResponse, *errors.AppError) {
	normalized := utils.NormalizeEmail(email)
	events, err := service.repo.GetEventsByEmail(ctx, normalized)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participant events", err)
	}
	if events == nil {
		events = []dto.RegisteredEvent{}
	}
	return &dto.ParticipantEventsResponse{
		Email:       normalized,
		Events:      events,
		TotalEvents: len(events),
	}, nil
}

func (service *ParticipantService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateParticipantRequest) (*entity.Participant, *errors.AppError) {
	participant, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participant", err)
	}
	if participant == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "participant not found", nil)
	}

	if req.FirstName != nil {
		participant.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		participant.LastName = *req.LastName
	}
	if req.Email != nil {
		normalized := utils.NormalizeEmail(*req.Email)
		if !utils.IsValidEmail(normalized) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
		}
		participant.Email = normalized
	}
	if req.Phone != nil {
		participant.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		participant.DateOfBirth = req.DateOfBirth
	}
	if req.Address != nil {
		participant.Address = req.Address
	}
	if req.City != nil {
		participant.City = req.City
	}
	if req.Country != nil {
		participant.Country = req.Country
	}

	if err := service.repo.Update(ctx, participant); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "participant not found", nil)
		}
		if stderrors.Is(err, repository.ErrDuplicateRegistration) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered for this parent", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update participant", err)
	}
	return participant, nil
}

// Remove deletes the participant and pulls it from its parent roster.
func (service *ParticipantService) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	participant, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "failed to retrieve participant", err)
	}
	if participant == nil {
		return errors.NewAppError(errors.ErrNotFound, "participant not found", nil)
	}

	if err := service.repo.Delete(ctx, participant); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete participant", err)
	}
	return nil
}

func (service *ParticipantService) fromRequest(req *dto.RegisterParticipantRequest) (*entity.Participant, *errors.AppError) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "first and last name are required", nil)
	}
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
	}

	participant := &entity.Participant{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       email,
		DateOfBirth: req.DateOfBirth,
	}
	if req.Phone != "" {
		participant.Phone = &req.Phone
	}
	if req.Address != "" {
		participant.Address = &req.Address
	}
	if req.City != "" {
		participant.City = &req.City
	}
	if req.Country != "" {
		participant.Country = &req.Country
	}
	return participant, nil
}

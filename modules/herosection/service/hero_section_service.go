package service

import (
	"context"
	"database/sql"
	"encoding/json"

	"makerskills-api/core/errors"
	"makerskills-api/modules/herosection/dto"
	"makerskills-api/modules/herosection/entity"
	"makerskills-api/modules/herosection/repository"

	"github.com/google/uuid"
)

type HeroSectionServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateHeroSectionRequest) (*entity.HeroSection, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.HeroSection, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.HeroSection, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHeroSectionRequest) (*entity.HeroSection, []string, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) (*entity.HeroSection, *errors.AppError)
}

type HeroSectionService struct {
	repo repository.HeroSectionRepositoryInterface
}

func NewHeroSectionService(repo repository.HeroSectionRepositoryInterface) *HeroSectionService {
	return &HeroSectionService{repo: repo}
}

func parseButtons(raw string) (entity.HeroButtons, *errors.AppError) {
	if raw == "" {
		return entity.HeroButtons{}, nil
	}
	var buttons entity.HeroButtons
	if err := json.Unmarshal([]byte(raw), &buttons); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "buttons must be a JSON array of {name, action}", err)
	}
	for _, b := range buttons {
		if b.Name == "" || b.Action == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "each button needs a name and an action", nil)
		}
	}
	return buttons, nil
}

func (service *HeroSectionService) Create(ctx context.Context, req *dto.CreateHeroSectionRequest) (*entity.HeroSection, *errors.AppError) {
	if req.Title == "" || req.Description == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title and description are required", nil)
	}

	buttons, appErr := parseButtons(req.Buttons)
	if appErr != nil {
		return nil, appErr
	}

	section := &entity.HeroSection{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Buttons:     buttons,
	}
	if section.Images == nil {
		section.Images = []string{}
	}

	created, err := service.repo.Create(ctx, section)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create hero section: "+err.Error(), err)
	}
	return created, nil
}

func (service *HeroSectionService) FindAll(ctx context.Context) ([]entity.HeroSection, *errors.AppError) {
	sections, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve hero sections", err)
	}
	if sections == nil {
		sections = []entity.HeroSection{}
	}
	return sections, nil
}

func (service *HeroSectionService) FindOne(ctx context.Context, id uuid.UUID) (*entity.HeroSection, *errors.AppError) {
	section, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve hero section", err)
	}
	if section == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "hero section not found", nil)
	}
	return section, nil
}

// Update merges the request into the stored section. When new images are
// uploaded they replace the previous set; the replaced paths are returned
// so the caller can release them from storage.
func (service *HeroSectionService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHeroSectionRequest) (*entity.HeroSection, []string, *errors.AppError) {
	section, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve hero section", err)
	}
	if section == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "hero section not found", nil)
	}

	var replaced []string
	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.Buttons != nil {
		buttons, appErr := parseButtons(*req.Buttons)
		if appErr != nil {
			return nil, nil, appErr
		}
		section.Buttons = buttons
	}
	if len(req.Images) > 0 {
		replaced = append(replaced, section.Images...)
		section.Images = req.Images
	}

	if err := service.repo.Update(ctx, section); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, errors.NewAppError(errors.ErrNotFound, "hero section not found", nil)
		}
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update hero section: "+err.Error(), err)
	}
	return section, replaced, nil
}

func (service *HeroSectionService) Remove(ctx context.Context, id uuid.UUID) (*entity.HeroSection, *errors.AppError) {
	section, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve hero section", err)
	}
	if section == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "hero section not found", nil)
	}

	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to delete hero section", err)
	}
	if !deleted {
		return nil, errors.NewAppError(errors.ErrNotFound, "hero section not found", nil)
	}
	return section, nil
}

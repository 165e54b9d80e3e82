package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/reviews/dto"
	"makerskills-api/modules/reviews/entity"
	"makerskills-api/modules/reviews/repository"

	"github.com/google/uuid"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*entity.Review, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.Review, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Review, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateReviewRequest) (*entity.Review, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) (*entity.Review, *errors.AppError)
}

type ReviewService struct {
	repo repository.ReviewRepositoryInterface
}

func NewReviewService(repo repository.ReviewRepositoryInterface) *ReviewService {
	return &ReviewService{repo: repo}
}

func (service *ReviewService) Create(ctx context.Context, req *dto.CreateReviewRequest) (*entity.Review, *errors.AppError) {
	if req.FullName == "" || req.Message == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "full name and message are required", nil)
	}
	if req.Stars < 1 || req.Stars > 5 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "stars must be between 1 and 5", nil)
	}

	review := &entity.Review{
		FullName: req.FullName,
		Stars:    req.Stars,
		Message:  req.Message,
	}
	if req.Image != "" {
		review.Image = &req.Image
	}
	if req.PosteActuelle != "" {
		review.PosteActuelle = &req.PosteActuelle
	}

	created, err := service.repo.Create(ctx, review)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create review: "+err.Error(), err)
	}
	return created, nil
}

func (service *ReviewService) FindAll(ctx context.Context) ([]entity.Review, *errors.AppError) {
	reviews, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve reviews", err)
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	return reviews, nil
}

func (service *ReviewService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Review, *errors.AppError) {
	review, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve review", err)
	}
	if review == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "review not found", nil)
	}
	return review, nil
}

func (service *ReviewService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateReviewRequest) (*entity.Review, *errors.AppError) {
	review, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve review", err)
	}
	if review == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "review not found", nil)
	}

	if req.FullName != nil {
		review.FullName = *req.FullName
	}
	if req.Image != nil {
		review.Image = req.Image
	}
	if req.PosteActuelle != nil {
		review.PosteActuelle = req.PosteActuelle
	}
	if req.Stars != nil {
		if *req.Stars < 1 || *req.Stars > 5 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "stars must be between 1 and 5", nil)
		}
		review.Stars = *req.Stars
	}
	if req.Message != nil {
		review.Message = *req.Message
	}

	if err := service.repo.Update(ctx, review); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "review not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update review: "+err.Error(), err)
	}
	return review, nil
}

func (service *ReviewService) Remove(ctx context.Context, id uuid.UUID) (*entity.Review, *errors.AppError) {
	review, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve review", err)
	}
	if review == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "review not found", nil)
	}

	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to delete review", err)
	}
	if !deleted {
		return nil, errors.NewAppError(errors.ErrNotFound, "review not found", nil)
	}
	return review, nil
}

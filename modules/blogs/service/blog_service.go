package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/modules/blogs/dto"
	"makerskills-api/modules/blogs/entity"
	"makerskills-api/modules/blogs/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type BlogServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateBlogRequest) (*entity.Blog, *errors.AppError)
	FindAll(ctx context.Context) ([]entity.Blog, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Blog, *errors.AppError)
	FindBySlug(ctx context.Context, slugValue string) (*entity.Blog, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBlogRequest) (*entity.Blog, []string, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) (*entity.Blog, *errors.AppError)
}

type BlogService struct {
	repo repository.BlogRepositoryInterface
}

func NewBlogService(repo repository.BlogRepositoryInterface) *BlogService {
	return &BlogService{repo: repo}
}

func (service *BlogService) Create(ctx context.Context, req *dto.CreateBlogRequest) (*entity.Blog, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}
	if req.Cover == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "cover image is required", nil)
	}

	blog := &entity.Blog{
		Title:  req.Title,
		Slug:   slug.Make(req.Title),
		Cover:  req.Cover,
		Images: req.Images,
	}
	if blog.Images == nil {
		blog.Images = []string{}
	}
	if req.Video != "" {
		blog.Video = &req.Video
	}
	if req.Description != "" {
		blog.Description = &req.Description
	}

	created, err := service.repo.Create(ctx, blog)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create blog: "+err.Error(), err)
	}
	return created, nil
}

func (service *BlogService) FindAll(ctx context.Context) ([]entity.Blog, *errors.AppError) {
	blogs, err := service.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve blogs", err)
	}
	if blogs == nil {
		blogs = []entity.Blog{}
	}
	return blogs, nil
}

func (service *BlogService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Blog, *errors.AppError) {
	blog, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve blog", err)
	}
	if blog == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "blog not found", nil)
	}
	return blog, nil
}

func (service *BlogService) FindBySlug(ctx context.Context, slugValue string) (*entity.Blog, *errors.AppError) {
	blog, err := service.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve blog", err)
	}
	if blog == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "blog not found", nil)
	}
	return blog, nil
}

func (service *BlogService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBlogRequest) (*entity.Blog, []string, *errors.AppError) {
	blog, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve blog", err)
	}
	if blog == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "blog not found", nil)
	}

	var replaced []string
	if req.Title != nil {
		blog.Title = *req.Title
		blog.Slug = slug.Make(*req.Title)
	}
	if req.Cover != nil && *req.Cover != blog.Cover {
		replaced = append(replaced, blog.Cover)
		blog.Cover = *req.Cover
	}
	if req.Images != nil {
		replaced = append(replaced, blog.Images...)
		blog.Images = req.Images
	}
	if req.Video != nil {
		if blog.Video != nil && *blog.Video != *req.Video {
			replaced = append(replaced, *blog.Video)
		}
		if *req.Video == "" {
			blog.Video = nil
		} else {
			blog.Video = req.Video
		}
	}
	if req.Description != nil {
		blog.Description = req.Description
	}

	if err := service.repo.Update(ctx, blog); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, errors.NewAppError(errors.ErrNotFound, "blog not found", nil)
		}
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update blog: "+err.Error(), err)
	}
	return blog, replaced, nil
}

func (service *BlogService) Remove(ctx context.Context, id uuid.UUID) (*entity.Blog, *errors.AppError) {
	blog, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve blog", err)
	}
	if blog == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "blog not found", nil)
	}

	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to delete blog", err)
	}
	if !deleted {
		return nil, errors.NewAppError(errors.ErrNotFound, "blog not found", nil)
	}
	return blog, nil
}

package service

import (
	"context"
	"database/sql"

	"makerskills-api/core/errors"
	"makerskills-api/core/params"
	"makerskills-api/modules/products/dto"
	"makerskills-api/modules/products/entity"
	"makerskills-api/modules/products/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ProductServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, *errors.AppError)
	FindAll(ctx context.Context, p params.QueryParams) (*dto.ProductListResponse, *errors.AppError)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, []string, *errors.AppError)
	Remove(ctx context.Context, id uuid.UUID) (*entity.Product, *errors.AppError)
}

type ProductService struct {
	repo repository.ProductRepositoryInterface
}

func NewProductService(repo repository.ProductRepositoryInterface) *ProductService {
	return &ProductService{repo: repo}
}

func (service *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}
	if req.Price == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "price is required", nil)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category ID", err)
	}

	product := &entity.Product{
		Name:       req.Name,
		Slug:       slug.Make(req.Name),
		Price:      *req.Price,
		CategoryID: categoryID,
		Images:     req.Images,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if req.Description != "" {
		product.Description = &req.Description
	}
	if req.Video != "" {
		product.Video = &req.Video
	}

	created, err := service.repo.Create(ctx, product)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "failed to create product: "+err.Error(), err)
	}
	return service.toResponse(ctx, created)
}

func (service *ProductService) FindAll(ctx context.Context, p params.QueryParams) (*dto.ProductListResponse, *errors.AppError) {
	products, total, err := service.repo.GetAll(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve products", err)
	}

	categoryIDs := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		categoryIDs = append(categoryIDs, p.CategoryID)
	}
	categories, err := service.repo.GetCategories(ctx, categoryIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve categories", err)
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp := toProductResponse(&products[i])
		if category, ok := categories[products[i].CategoryID]; ok {
			c := category
			resp.Category = &c
		}
		responses = append(responses, resp)
	}
	return &dto.ProductListResponse{
		Items:    responses,
		Total:    total,
		Page:     p.PageNumber,
		PageSize: p.PageSize,
	}, nil
}

func (service *ProductService) FindOne(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, *errors.AppError) {
	product, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve product", err)
	}
	if product == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "product not found", nil)
	}
	return service.toResponse(ctx, product)
}

// Update merges the patch and returns the media paths that were replaced
// so the controller can unlink them from storage.
func (service *ProductService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, []string, *errors.AppError) {
	product, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve product", err)
	}
	if product == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "product not found", nil)
	}

	var replaced []string
	if req.Name != nil {
		product.Name = *req.Name
		product.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invalid category ID", err)
		}
		product.CategoryID = categoryID
	}
	if req.Images != nil {
		replaced = append(replaced, product.Images...)
		product.Images = req.Images
	}
	if req.Video != nil {
		if product.Video != nil && *product.Video != *req.Video {
			replaced = append(replaced, *product.Video)
		}
		if *req.Video == "" {
			product.Video = nil
		} else {
			product.Video = req.Video
		}
	}

	if err := service.repo.Update(ctx, product); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, errors.NewAppError(errors.ErrNotFound, "product not found", nil)
		}
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "failed to update product: "+err.Error(), err)
	}

	resp, appErr := service.toResponse(ctx, product)
	if appErr != nil {
		return nil, nil, appErr
	}
	return resp, replaced, nil
}

// Remove deletes the product and returns the deleted row so the
// controller can unlink its media.
func (service *ProductService) Remove(ctx context.Context, id uuid.UUID) (*entity.Product, *errors.AppError) {
	product, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve product", err)
	}
	if product == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "product not found", nil)
	}

	deleted, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDeleteFailed, "failed to delete product", err)
	}
	if !deleted {
		return nil, errors.NewAppError(errors.ErrNotFound, "product not found", nil)
	}
	return product, nil
}

func (service *ProductService) toResponse(ctx context.Context, product *entity.Product) (*dto.ProductResponse, *errors.AppError) {
	resp := toProductResponse(product)

	categories, err := service.repo.GetCategories(ctx, []uuid.UUID{product.CategoryID})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to retrieve category", err)
	}
	if category, ok := categories[product.CategoryID]; ok {
		resp.Category = &category
	}
	return &resp, nil
}

func toProductResponse(product *entity.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		Price:     product.Price,
		Images:    product.Images,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if product.Description != nil {
		resp.Description = *product.Description
	}
	if product.Video != nil {
		resp.Video = *product.Video
	}
	return resp
}

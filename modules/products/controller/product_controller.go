package controller

import (
	"mime/multipart"

	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/params"
	"makerskills-api/core/storage"
	"makerskills-api/modules/products/dto"
	"makerskills-api/modules/products/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	uploadModule = "products"
	maxImages    = 10
)

type ProductController struct {
	controller.BaseController
	ProductService service.ProductServiceInterface
	Storage        storage.Storage
}

func NewProductController(svc service.ProductServiceInterface, store storage.Storage) *ProductController {
	return &ProductController{
		BaseController: controller.NewBaseController(),
		ProductService: svc,
		Storage:        store,
	}
}

// Create handles POST /products. Media arrives as multipart fields
// "images" (up to 10, image allow-list) and "video" (video allow-list);
// every file is validated before anything is stored.
func (c *ProductController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateProductRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	images, video, appErr := c.collectMedia(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	imagePaths, videoPath, saveErr := c.saveMedia(images, video)
	if saveErr != nil {
		logger.Error("ProductController:Create:Save", saveErr)
		return c.InternalServerError(errors.ErrInternalServer, "failed to store product media")
	}
	if len(imagePaths) > 0 {
		requestData.Images = imagePaths
	}
	if videoPath != "" {
		requestData.Video = videoPath
	}

	product, svcErr := c.ProductService.Create(ctx.Request().Context(), requestData)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.CreatedResponse(ctx, product, "Product created successfully")
}

// FindAll handles GET /products with optional ?search, ?page and
// ?page_size parameters.
func (c *ProductController) FindAll(ctx echo.Context) error {
	products, appErr := c.ProductService.FindAll(ctx.Request().Context(), params.NewQueryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, products, "Success")
}

// FindOne handles GET /products/:id
func (c *ProductController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid product ID")
	}

	product, appErr := c.ProductService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, product, "Success")
}

// Update handles PATCH /products/:id. Replaced media files are unlinked
// after the update succeeds.
func (c *ProductController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid product ID")
	}

	requestData := new(dto.UpdateProductRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	images, video, appErr := c.collectMedia(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	imagePaths, videoPath, saveErr := c.saveMedia(images, video)
	if saveErr != nil {
		logger.Error("ProductController:Update:Save", saveErr)
		return c.InternalServerError(errors.ErrInternalServer, "failed to store product media")
	}
	if len(imagePaths) > 0 {
		requestData.Images = imagePaths
	}
	if videoPath != "" {
		requestData.Video = &videoPath
	}

	product, replaced, svcErr := c.ProductService.Update(ctx.Request().Context(), id, requestData)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	for _, path := range replaced {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("ProductController:Update:RemoveOldMedia", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, product, "Product updated successfully")
}

// Remove handles DELETE /products/:id and unlinks the product's media.
func (c *ProductController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid product ID")
	}

	product, appErr := c.ProductService.Remove(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	for _, path := range product.Images {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("ProductController:Remove:RemoveMedia", "path", path, "error", rmErr)
		}
	}
	if product.Video != nil {
		if rmErr := c.Storage.Remove(*product.Video); rmErr != nil {
			logger.Warn("ProductController:Remove:RemoveMedia", "path", *product.Video, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, nil, "Product deleted successfully")
}

// collectMedia pulls the multipart media fields and validates every
// extension before any file is written.
func (c *ProductController) collectMedia(ctx echo.Context) ([]*multipart.FileHeader, *multipart.FileHeader, *errors.AppError) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, nil, nil
	}

	images := form.File["images"]
	if len(images) > maxImages {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "too many images", nil)
	}
	for _, f := range images {
		if appErr := storage.ValidateExtension(f.Filename, storage.KindImage); appErr != nil {
			return nil, nil, appErr
		}
	}

	var video *multipart.FileHeader
	if videos := form.File["video"]; len(videos) > 0 {
		video = videos[0]
		if appErr := storage.ValidateExtension(video.Filename, storage.KindVideo); appErr != nil {
			return nil, nil, appErr
		}
	}
	return images, video, nil
}

func (c *ProductController) saveMedia(images []*multipart.FileHeader, video *multipart.FileHeader) ([]string, string, error) {
	paths := make([]string, 0, len(images))
	for _, f := range images {
		path, err := c.Storage.Save(f, uploadModule, storage.KindImage)
		if err != nil {
			return nil, "", err
		}
		paths = append(paths, path)
	}

	var videoPath string
	if video != nil {
		path, err := c.Storage.Save(video, uploadModule, storage.KindVideo)
		if err != nil {
			return nil, "", err
		}
		videoPath = path
	}
	return paths, videoPath, nil
}

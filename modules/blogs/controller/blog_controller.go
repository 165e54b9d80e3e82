package controller

import (
	"makerskills-api/core/controller"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/storage"
	"makerskills-api/modules/blogs/dto"
	"makerskills-api/modules/blogs/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadModule = "blogs"

type BlogController struct {
	controller.BaseController
	BlogService service.BlogServiceInterface
	Storage     storage.Storage
}

func NewBlogController(svc service.BlogServiceInterface, store storage.Storage) *BlogController {
	return &BlogController{
		BaseController: controller.NewBaseController(),
		BlogService:    svc,
		Storage:        store,
	}
}

// Create handles POST /blogs. Multipart fields: "cover" (image),
// "images" (image gallery) and "video"; every extension is checked
// before any file is written.
func (c *BlogController) Create(ctx echo.Context) error {
	requestData := new(dto.CreateBlogRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	if appErr := c.applyMedia(ctx, func(cover, video string, images []string) {
		if cover != "" {
			requestData.Cover = cover
		}
		if video != "" {
			requestData.Video = video
		}
		if len(images) > 0 {
			requestData.Images = images
		}
	}); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	blog, svcErr := c.BlogService.Create(ctx.Request().Context(), requestData)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}
	return c.CreatedResponse(ctx, blog, "Blog created successfully")
}

func (c *BlogController) FindAll(ctx echo.Context) error {
	blogs, appErr := c.BlogService.FindAll(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, blogs, "Success")
}

func (c *BlogController) FindOne(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid blog ID")
	}

	blog, appErr := c.BlogService.FindOne(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, blog, "Success")
}

// FindBySlug handles GET /blogs/slug/:slug
func (c *BlogController) FindBySlug(ctx echo.Context) error {
	blog, appErr := c.BlogService.FindBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, blog, "Success")
}

func (c *BlogController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid blog ID")
	}

	requestData := new(dto.UpdateBlogRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	if appErr := c.applyMedia(ctx, func(cover, video string, images []string) {
		if cover != "" {
			requestData.Cover = &cover
		}
		if video != "" {
			requestData.Video = &video
		}
		if len(images) > 0 {
			requestData.Images = images
		}
	}); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	blog, replaced, svcErr := c.BlogService.Update(ctx.Request().Context(), id, requestData)
	if svcErr != nil {
		return c.ErrorResponse(ctx, svcErr)
	}

	for _, path := range replaced {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("BlogController:Update:RemoveOldMedia", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, blog, "Blog updated successfully")
}

func (c *BlogController) Remove(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid blog ID")
	}

	blog, appErr := c.BlogService.Remove(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	media := append([]string{blog.Cover}, blog.Images...)
	if blog.Video != nil {
		media = append(media, *blog.Video)
	}
	for _, path := range media {
		if rmErr := c.Storage.Remove(path); rmErr != nil {
			logger.Warn("BlogController:Remove:RemoveMedia", "path", path, "error", rmErr)
		}
	}
	return c.SuccessResponse(ctx, nil, "Blog deleted successfully")
}

// applyMedia validates every uploaded file first, then stores them and
// hands the public paths to the supplied setter.
func (c *BlogController) applyMedia(ctx echo.Context, set func(cover, video string, images []string)) *errors.AppError {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil
	}

	covers := form.File["cover"]
	images := form.File["images"]
	videos := form.File["video"]

	for _, f := range covers {
		if appErr := storage.ValidateExtension(f.Filename, storage.KindImage); appErr != nil {
			return appErr
		}
	}
	for _, f := range images {
		if appErr := storage.ValidateExtension(f.Filename, storage.KindImage); appErr != nil {
			return appErr
		}
	}
	for _, f := range videos {
		if appErr := storage.ValidateExtension(f.Filename, storage.KindVideo); appErr != nil {
			return appErr
		}
	}

	var cover, video string
	if len(covers) > 0 {
		path, saveErr := c.Storage.Save(covers[0], uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("BlogController:ApplyMedia", saveErr)
			return errors.NewAppError(errors.ErrInternalServer, "failed to store blog media", saveErr)
		}
		cover = path
	}
	imagePaths := make([]string, 0, len(images))
	for _, f := range images {
		path, saveErr := c.Storage.Save(f, uploadModule, storage.KindImage)
		if saveErr != nil {
			logger.Error("BlogController:ApplyMedia", saveErr)
			return errors.NewAppError(errors.ErrInternalServer, "failed to store blog media", saveErr)
		}
		imagePaths = append(imagePaths, path)
	}
	if len(videos) > 0 {
		path, saveErr := c.Storage.Save(videos[0], uploadModule, storage.KindVideo)
		if saveErr != nil {
			logger.Error("BlogController:ApplyMedia", saveErr)
			return errors.NewAppError(errors.ErrInternalServer, "failed to store blog media", saveErr)
		}
		video = path
	}

	set(cover, video, imagePaths)
	return nil
}

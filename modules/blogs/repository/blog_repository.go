package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/blogs/entity"

	"github.com/google/uuid"
)

type BlogRepositoryInterface interface {
	Create(ctx context.Context, blog *entity.Blog) (*entity.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	GetAll(ctx context.Context) ([]entity.Blog, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type BlogRepository struct {
	DB database.IDatabase
}

func NewBlogRepository(db database.IDatabase) *BlogRepository {
	return &BlogRepository{DB: db}
}

const blogColumns = `
	id, title, slug, cover, images, video, description, created_at, updated_at`

func (r *BlogRepository) Create(ctx context.Context, blog *entity.Blog) (*entity.Blog, error) {
	var created entity.Blog
	query := `
		INSERT INTO blogs (title, slug, cover, images, video, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + blogColumns
	err := r.DB.GetContext(ctx, &created, query,
		blog.Title, blog.Slug, blog.Cover, blog.Images, blog.Video, blog.Description,
	)
	if err != nil {
		logger.Error("BlogRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blog entity.Blog
	query := `SELECT` + blogColumns + ` FROM blogs WHERE id = $1`
	err := r.DB.GetContext(ctx, &blog, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BlogRepository:GetByID", err)
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	var blog entity.Blog
	query := `SELECT` + blogColumns + ` FROM blogs WHERE slug = $1`
	err := r.DB.GetContext(ctx, &blog, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BlogRepository:GetBySlug", err)
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) GetAll(ctx context.Context) ([]entity.Blog, error) {
	var blogs []entity.Blog
	query := `SELECT` + blogColumns + ` FROM blogs ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &blogs, query); err != nil {
		logger.Error("BlogRepository:GetAll", err)
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, slug = $2, cover = $3, images = $4, video = $5,
			description = $6, updated_at = now()
		WHERE id = $7
	`
	res, err := r.DB.SQLx().ExecContext(ctx, query,
		blog.Title, blog.Slug, blog.Cover, blog.Images, blog.Video,
		blog.Description, blog.ID,
	)
	if err != nil {
		logger.Error("BlogRepository:Update", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.DB.SQLx().ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		logger.Error("BlogRepository:Delete", err)
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

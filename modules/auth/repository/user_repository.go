package repository

import (
	"context"
	"database/sql"

	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	CountUsers(ctx context.Context) (int, error)
}

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, password, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password, name, created_at, updated_at
	`
	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, user.Email, user.Password, user.Name)
	if err != nil {
		logger.Error("UserRepository:CreateUser", err)
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := `
		UPDATE users
		SET password = $1, updated_at = now()
		WHERE id = $2
	`
	if err := r.DB.ExecContext(ctx, query, hashedPassword, id); err != nil {
		logger.Error("UserRepository:UpdatePassword", err)
		return err
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("UserRepository:DeleteUser", err)
		return err
	}
	return nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users`
	if err := r.DB.GetContext(ctx, &count, query); err != nil {
		logger.Error("UserRepository:CountUsers", err)
		return 0, err
	}
	return count, nil
}

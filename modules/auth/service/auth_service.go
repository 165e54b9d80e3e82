package service

import (
	"context"
	"time"

	"makerskills-api/core/cache"
	"makerskills-api/core/constants"
	"makerskills-api/core/errors"
	"makerskills-api/core/logger"
	"makerskills-api/core/utils"
	"makerskills-api/modules/auth/dto"
	"makerskills-api/modules/auth/entity"
	"makerskills-api/modules/auth/mapper"
	"makerskills-api/modules/auth/repository"

	"github.com/google/uuid"
)

// invalidCredentials is the single message used for unknown email AND
// wrong password, so a caller cannot probe which accounts exist.
const invalidCredentials = "invalid email or password"

type AuthServiceInterface interface {
	Login(ctx context.Context, requestData *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	CreateUser(ctx context.Context, requestData *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError)
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) (*dto.UserResponse, *errors.AppError)
	DeleteUser(ctx context.Context, userID uuid.UUID) *errors.AppError
}

type AuthService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.UserRepositoryInterface, c cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

func (service *AuthService) Login(ctx context.Context, requestData *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	email := utils.NormalizeEmail(requestData.Email)

	if appErr := service.checkLoginThrottle(ctx, email); appErr != nil {
		return nil, appErr
	}

	user, err := service.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}

	// Unknown email and wrong password take the same path on purpose.
	if user == nil {
		service.recordFailedLogin(ctx, email)
		return nil, errors.NewAppError(errors.ErrUnauthorized, invalidCredentials, nil)
	}

	if !utils.ComparePassword(user.Password, requestData.Password) {
		service.recordFailedLogin(ctx, email)
		return nil, errors.NewAppError(errors.ErrUnauthorized, invalidCredentials, nil)
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	service.clearLoginAttempts(ctx, email)

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        *mapper.ToUserDTO(user),
	}, nil
}

func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	if service.cache == nil {
		return nil
	}

	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if errAdd := service.cache.AddToTokenBlacklist(ctx, token, ttl); errAdd != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", errAdd)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", errAdd)
	}
	return nil
}

func (service *AuthService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return mapper.ToUserDTO(user), nil
}

func (service *AuthService) CreateUser(ctx context.Context, requestData *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError) {
	email := utils.NormalizeEmail(requestData.Email)

	existing, err := service.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user with this email already exists", nil)
	}

	hashedPassword, err := utils.HashPassword(requestData.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	userEntity := &entity.User{
		Email:    email,
		Password: hashedPassword,
	}
	if requestData.Name != "" {
		userEntity.Name = &requestData.Name
	}

	created, err := service.repo.CreateUser(ctx, userEntity)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
	}
	return mapper.ToUserDTO(created), nil
}

func (service *AuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) (*dto.UserResponse, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	if err := service.repo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update password", err)
	}

	return service.GetMe(ctx, userID)
}

func (service *AuthService) DeleteUser(ctx context.Context, userID uuid.UUID) *errors.AppError {
	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	if err := service.repo.DeleteUser(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete user", err)
	}
	return nil
}

// Login throttling is best-effort: when redis is down, authentication
// still works, it just loses the attempt counter.

func (service *AuthService) checkLoginThrottle(ctx context.Context, email string) *errors.AppError {
	if service.cache == nil {
		return nil
	}
	attempts, err := service.cache.GetLoginAttempts(ctx, email)
	if err != nil {
		logger.Warn("AuthService:Login:GetLoginAttempts", err)
		return nil
	}
	if attempts >= constants.MaxLoginAttempts {
		return errors.NewAppError(errors.ErrUnauthorized, "too many failed login attempts, try again later", nil)
	}
	return nil
}

func (service *AuthService) recordFailedLogin(ctx context.Context, email string) {
	if service.cache == nil {
		return
	}
	if err := service.cache.IncrementLoginAttempt(ctx, email); err != nil {
		logger.Warn("AuthService:Login:IncrementLoginAttempt", err)
	}
}

func (service *AuthService) clearLoginAttempts(ctx context.Context, email string) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Del(ctx, email); err != nil {
		logger.Warn("AuthService:Login:ClearLoginAttempts", err)
	}
}

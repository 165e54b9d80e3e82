package service

import (
	"context"

	"makerskills-api/core/logger"
	"makerskills-api/core/utils"
	"makerskills-api/modules/auth/entity"
	"makerskills-api/modules/auth/repository"
)

type seedUser struct {
	email    string
	password string
	name     string
}

// Default credentials created on first startup for development
// convenience. Seeding is skipped as soon as any user exists.
var defaultUsers = []seedUser{
	{email: "admin@makerskills.com", password: "admin123", name: "Admin User"},
	{email: "user@makerskills.com", password: "user123", name: "Test User"},
	{email: "demo@example.com", password: "demo123", name: "Demo User"},
}

func SeedDefaultUsers(ctx context.Context, repo repository.UserRepositoryInterface) {
	count, err := repo.CountUsers(ctx)
	if err != nil {
		logger.Error("Auth:SeedDefaultUsers:CountUsers", err)
		return
	}
	if count > 0 {
		logger.Info("Auth:SeedDefaultUsers:Skipped", "reason", "users already exist")
		return
	}

	for _, su := range defaultUsers {
		hashed, err := utils.HashPassword(su.password)
		if err != nil {
			logger.Error("Auth:SeedDefaultUsers:HashPassword", err)
			continue
		}
		name := su.name
		if _, err := repo.CreateUser(ctx, &entity.User{
			Email:    su.email,
			Password: hashed,
			Name:     &name,
		}); err != nil {
			logger.Error("Auth:SeedDefaultUsers:CreateUser", "email", su.email, "error", err)
			continue
		}
		logger.Info("Auth:SeedDefaultUsers:Created", "email", su.email)
	}
}

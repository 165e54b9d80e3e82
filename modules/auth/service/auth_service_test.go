package service

import (
	"context"
	"testing"
	"time"

	"makerskills-api/core/config"
	"makerskills-api/core/constants"
	"makerskills-api/core/errors"
	"makerskills-api/core/utils"
	"makerskills-api/modules/auth/dto"
	"makerskills-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[uuid.UUID]*entity.User{},
	}
}

func (f *fakeUserRepo) add(user *entity.User) {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	user.ID = uuid.New()
	f.add(user)
	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hashedPassword string) error {
	if u, ok := f.byID[id]; ok {
		u.Password = hashedPassword
	}
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id uuid.UUID) error {
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
	return nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int, error) {
	return len(f.byID), nil
}

type fakeCache struct {
	attempts    map[string]int
	blacklisted map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{attempts: map[string]int{}, blacklisted: map[string]bool{}}
}

func (f *fakeCache) IncrementLoginAttempt(_ context.Context, key string) error {
	f.attempts[key]++
	return nil
}

func (f *fakeCache) GetLoginAttempts(_ context.Context, key string) (int, error) {
	return f.attempts[key], nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	delete(f.attempts, key)
	return nil
}

func (f *fakeCache) AddToTokenBlacklist(_ context.Context, token string, _ time.Duration) error {
	f.blacklisted[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	return f.blacklisted[token], nil
}

func (f *fakeCache) Client() *redis.Client { return nil }

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		},
	})
}

func seedTestUser(t *testing.T, repo *fakeUserRepo, email, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &entity.User{ID: uuid.New(), Email: email, Password: hash}
	repo.add(user)
	return user
}

func TestLoginSuccess(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	seedTestUser(t, repo, "admin@example.com", "correct-horse")
	svc := NewAuthService(repo, nil)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Admin@Example.COM",
		Password: "correct-horse",
	})
	if appErr != nil {
		t.Fatalf("Login: %v", appErr)
	}
	if resp.AccessToken == "" {
		t.Error("empty access token")
	}
	if resp.User.Email != "admin@example.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}

	claims, err := utils.ValidateAndParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		t.Errorf("scope = %q", claims.Scope)
	}
}

// Unknown email and wrong password must be indistinguishable to the
// caller, otherwise login doubles as an account probe.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	seedTestUser(t, repo, "admin@example.com", "correct-horse")
	svc := NewAuthService(repo, nil)

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	_, wrongErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-pass",
	})

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("expected both logins to fail")
	}
	if unknownErr.Code != errors.ErrUnauthorized || wrongErr.Code != errors.ErrUnauthorized {
		t.Errorf("codes = %s / %s, want both %s", unknownErr.Code, wrongErr.Code, errors.ErrUnauthorized)
	}
	if unknownErr.Message != wrongErr.Message {
		t.Errorf("messages differ: %q vs %q", unknownErr.Message, wrongErr.Message)
	}
}

func TestLoginThrottledAfterTooManyFailures(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	seedTestUser(t, repo, "admin@example.com", "correct-horse")
	c := newFakeCache()
	c.attempts["admin@example.com"] = constants.MaxLoginAttempts
	svc := NewAuthService(repo, c)

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	if appErr == nil {
		t.Fatal("expected throttled login to fail")
	}
	if appErr.Code != errors.ErrUnauthorized {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrUnauthorized)
	}
}

func TestLoginFailureCountsAttempt(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	seedTestUser(t, repo, "admin@example.com", "correct-horse")
	c := newFakeCache()
	svc := NewAuthService(repo, c)

	_, _ = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-pass",
	})
	if c.attempts["admin@example.com"] != 1 {
		t.Errorf("attempts = %d, want 1", c.attempts["admin@example.com"])
	}

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	if appErr != nil {
		t.Fatalf("Login after one failure: %v", appErr)
	}
	if c.attempts["admin@example.com"] != 0 {
		t.Errorf("attempts not cleared after success: %d", c.attempts["admin@example.com"])
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	c := newFakeCache()
	svc := NewAuthService(repo, c)

	token, err := utils.GenerateToken(uuid.New(), "admin@example.com", constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if appErr := svc.Logout(context.Background(), token); appErr != nil {
		t.Fatalf("Logout: %v", appErr)
	}
	if !c.blacklisted[token] {
		t.Error("token not blacklisted")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	seedTestUser(t, repo, "admin@example.com", "correct-horse")
	svc := NewAuthService(repo, nil)

	_, appErr := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:    "Admin@Example.com",
		Password: "another-pass",
	})
	if appErr == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
	if appErr.Code != errors.ErrAlreadyExists {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrAlreadyExists)
	}
}

func TestGetMeUnknownUser(t *testing.T) {
	setTestConfig(t)
	svc := NewAuthService(newFakeUserRepo(), nil)

	_, appErr := svc.GetMe(context.Background(), uuid.New())
	if appErr == nil {
		t.Fatal("expected not found")
	}
	if appErr.Code != errors.ErrNotFound {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrNotFound)
	}
}

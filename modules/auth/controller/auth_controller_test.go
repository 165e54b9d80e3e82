package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"makerskills-api/core/errors"
	"makerskills-api/modules/auth/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type fakeAuthService struct {
	createdReq     *dto.CreateUserRequest
	createErr      *errors.AppError
	passwordUserID uuid.UUID
	passwordValue  string
	updateErr      *errors.AppError
	deletedUserID  uuid.UUID
	deleteErr      *errors.AppError
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) *errors.AppError {
	return nil
}

func (f *fakeAuthService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeAuthService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError) {
	f.createdReq = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.UserResponse{ID: uuid.NewString(), Email: req.Email, Name: req.Name}, nil
}

func (f *fakeAuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) (*dto.UserResponse, *errors.AppError) {
	f.passwordUserID = userID
	f.passwordValue = newPassword
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dto.UserResponse{ID: userID.String()}, nil
}

func (f *fakeAuthService) DeleteUser(ctx context.Context, userID uuid.UUID) *errors.AppError {
	f.deletedUserID = userID
	return f.deleteErr
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateUserReturnsCreated(t *testing.T) {
	svc := &fakeAuthService{}
	c := NewAuthController(svc)

	ctx, rec := newTestContext(http.MethodPost, "/auth/users", `{"email":"new@makerskills.com","password":"secret1","name":"New Admin"}`)
	if err := c.CreateUser(ctx); err != nil {
		t.Fatalf("CreateUser returned %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if svc.createdReq == nil || svc.createdReq.Email != "new@makerskills.com" {
		t.Errorf("service received %+v", svc.createdReq)
	}
}

func TestCreateUserRejectsInvalidPayload(t *testing.T) {
	svc := &fakeAuthService{}
	c := NewAuthController(svc)

	ctx, _ := newTestContext(http.MethodPost, "/auth/users", `{"email":"not-an-email","password":"x"}`)
	err := c.CreateUser(ctx)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
	if svc.createdReq != nil {
		t.Error("service called despite invalid payload")
	}
}

func TestCreateUserDuplicateMapsToConflict(t *testing.T) {
	svc := &fakeAuthService{
		createErr: errors.NewAppError(errors.ErrAlreadyExists, "user already exists", nil),
	}
	c := NewAuthController(svc)

	ctx, rec := newTestContext(http.MethodPost, "/auth/users", `{"email":"admin@makerskills.com","password":"admin123"}`)
	if err := c.CreateUser(ctx); err != nil {
		t.Fatalf("CreateUser returned %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestUpdatePasswordRejectsMalformedID(t *testing.T) {
	svc := &fakeAuthService{}
	c := NewAuthController(svc)

	ctx, _ := newTestContext(http.MethodPatch, "/auth/users/not-a-uuid/password", `{"password":"secret1"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	err := c.UpdatePassword(ctx)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
	if svc.passwordValue != "" {
		t.Error("service called despite malformed id")
	}
}

func TestUpdatePasswordForwardsToService(t *testing.T) {
	svc := &fakeAuthService{}
	c := NewAuthController(svc)
	id := uuid.New()

	ctx, rec := newTestContext(http.MethodPatch, "/auth/users/"+id.String()+"/password", `{"password":"changed1"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	if err := c.UpdatePassword(ctx); err != nil {
		t.Fatalf("UpdatePassword returned %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if svc.passwordUserID != id || svc.passwordValue != "changed1" {
		t.Errorf("service received %s / %q", svc.passwordUserID, svc.passwordValue)
	}
}

func TestDeleteUserUnknownMapsToNotFound(t *testing.T) {
	svc := &fakeAuthService{
		deleteErr: errors.NewAppError(errors.ErrNotFound, "user not found", nil),
	}
	c := NewAuthController(svc)
	id := uuid.New()

	ctx, rec := newTestContext(http.MethodDelete, "/auth/users/"+id.String(), "")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id.String())

	if err := c.DeleteUser(ctx); err != nil {
		t.Fatalf("DeleteUser returned %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if svc.deletedUserID != id {
		t.Errorf("service received %s", svc.deletedUserID)
	}
}

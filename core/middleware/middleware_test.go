package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"makerskills-api/core/config"
	"makerskills-api/core/constants"
	"makerskills-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

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

func runGuard(t *testing.T, authHeader string) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	reached := false
	handler := NewMiddleware(nil).AuthMiddleware()(func(c echo.Context) error {
		reached = true
		return nil
	})
	return handler(c), reached
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !stderrors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *echo.HTTPError", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", httpErr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	setTestConfig(t)
	err, reached := runGuard(t, "")
	assertUnauthorized(t, err)
	if reached {
		t.Error("handler ran without credentials")
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	setTestConfig(t)
	err, reached := runGuard(t, "Basic dXNlcjpwYXNz")
	assertUnauthorized(t, err)
	if reached {
		t.Error("handler ran with a non-bearer header")
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	setTestConfig(t)
	err, reached := runGuard(t, "Bearer not.a.jwt")
	assertUnauthorized(t, err)
	if reached {
		t.Error("handler ran with an invalid token")
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	setTestConfig(t)

	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "admin@example.com", constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	var got *utils.TokenClaims
	handler := NewMiddleware(nil).AuthMiddleware()(func(c echo.Context) error {
		got, _ = c.Get(constants.ContextTokenData).(*utils.TokenClaims)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got == nil {
		t.Fatal("claims not attached to context")
	}
	if got.UserID != userID {
		t.Errorf("user id = %s, want %s", got.UserID, userID)
	}
}

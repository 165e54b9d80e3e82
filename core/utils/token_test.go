package utils

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"makerskills-api/core/config"
	"makerskills-api/core/constants"
	"makerskills-api/core/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setTestConfig(accessTTL time.Duration) {
	config.Set(&config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			AccessTTL:  accessTTL,
			RefreshTTL: 24 * time.Hour,
		},
	})
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(time.Hour)

	userID := uuid.New()
	token, err := GenerateToken(userID, "admin@example.com", constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateAndParseToken(token)
	if err != nil {
		t.Fatalf("ValidateAndParseToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		t.Errorf("scope = %q", claims.Scope)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	setTestConfig(-time.Minute)

	token, err := GenerateToken(uuid.New(), "admin@example.com", constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	setTestConfig(time.Hour)
	_, err = ValidateAndParseToken(token)
	if err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrTokenExpired {
		t.Errorf("error = %v, want code %s", err, errors.ErrTokenExpired)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	setTestConfig(time.Hour)

	token, err := GenerateToken(uuid.New(), "admin@example.com", constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateAndParseToken(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestGetTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"missing", "", "", false},
		{"no bearer prefix", "Token abc", "", false},
		{"empty token", "Bearer ", "", false},
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			got, err := GetTokenFromHeader(c)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("token = %q, want %q", got, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

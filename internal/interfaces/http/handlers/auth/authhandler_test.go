package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/application/auth/usecases"
	"campusdesk/internal/shared/errors"
)

type mockRegisterExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

func (m *mockRegisterExecutor) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLoginExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

func (m *mockLoginExecutor) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

func setupEngine(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/auth/register", h.Register)
	engine.POST("/api/auth/login", h.Login)
	return engine
}

func TestAuthHandler_Register_Created(t *testing.T) {
	handler := NewAuthHandler(
		&mockRegisterExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
				assert.Equal(t, "newton@student.test", cmd.Email)
				return &usecases.RegisterResult{UserID: 1, Email: "newton@student.test", Name: "Newton Student", Role: "STUDENT"}, nil
			},
		},
		&mockLoginExecutor{},
	)
	engine := setupEngine(handler)

	body := `{"email":"newton@student.test","name":"Newton Student","password":"newton123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.Data.ID)
	assert.Equal(t, "STUDENT", resp.Data.Role)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	handler := NewAuthHandler(
		&mockRegisterExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
				t.Fatal("use case must not run on a bad request body")
				return nil, nil
			},
		},
		&mockLoginExecutor{},
	)
	engine := setupEngine(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@b.test"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	handler := NewAuthHandler(
		&mockRegisterExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
				return nil, errors.NewConflictError("email already registered")
			},
		},
		&mockLoginExecutor{},
	)
	engine := setupEngine(handler)

	body := `{"email":"newton@student.test","name":"Newton","password":"pw"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := NewAuthHandler(
		&mockRegisterExecutor{},
		&mockLoginExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
				return &usecases.LoginResult{Token: "signed-token", UserID: 7, Email: "newton@student.test", Name: "Newton", Role: "STUDENT"}, nil
			},
		},
	)
	engine := setupEngine(handler)

	body := `{"email":"newton@student.test","password":"newton123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				ID uint `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Data.Token)
	assert.Equal(t, uint(7), resp.Data.User.ID)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler := NewAuthHandler(
		&mockRegisterExecutor{},
		&mockLoginExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
				return nil, errors.NewUnauthorizedError("invalid credentials")
			},
		},
	)
	engine := setupEngine(handler)

	body := `{"email":"newton@student.test","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MissingBody(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterExecutor{}, &mockLoginExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
			t.Fatal("use case must not run on a bad request body")
			return nil, nil
		},
	})
	engine := setupEngine(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

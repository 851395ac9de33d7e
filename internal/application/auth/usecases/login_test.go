package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
)

func loginTestUser(t *testing.T) *user.User {
	t.Helper()

	email, err := uservo.NewEmail("newton@student.test")
	require.NoError(t, err)

	u, err := user.ReconstructUser(7, email, "Newton Student", "$2a$12$stored", authorization.RoleStudent, time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	u := loginTestUser(t)

	uc := NewLoginUseCase(
		&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "newton@student.test", email)
				return u, nil
			},
		},
		&mockHasher{
			VerifyFunc: func(password, hash string) error {
				assert.Equal(t, "newton123", password)
				assert.Equal(t, "$2a$12$stored", hash)
				return nil
			},
		},
		&mockTokenIssuer{
			GenerateFunc: func(userID uint, role authorization.UserRole, email string) (string, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, authorization.RoleStudent, role)
				return "signed-token", nil
			},
		},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "  Newton@Student.Test  ",
		Password: "newton123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "STUDENT", result.Role)
}

func TestLoginUseCase_Execute_UnknownAccount(t *testing.T) {
	uc := NewLoginUseCase(
		&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		},
		&mockHasher{},
		&mockTokenIssuer{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "ghost@student.test",
		Password: "whatever",
	})

	assert.Nil(t, result)
	require.True(t, errors.IsUnauthorizedError(err))
	// unknown account and wrong password produce the same message
	appErr := errors.GetAppError(err)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	u := loginTestUser(t)

	uc := NewLoginUseCase(
		&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		},
		&mockHasher{
			VerifyFunc: func(password, hash string) error {
				return fmt.Errorf("mismatch")
			},
		},
		&mockTokenIssuer{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "newton@student.test",
		Password: "wrong",
	})

	assert.Nil(t, result)
	require.True(t, errors.IsUnauthorizedError(err))
	appErr := errors.GetAppError(err)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: ""})

	assert.Nil(t, result)
	assert.True(t, errors.IsUnauthorizedError(err))
}

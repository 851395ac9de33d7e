package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
)

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	uc := NewRegisterUseCase(
		&mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				saved = u
				return u.SetID(1)
			},
		},
		&mockHasher{
			HashFunc: func(password string) (string, error) {
				assert.Equal(t, "newton123", password)
				return "$2a$12$hashed", nil
			},
		},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "Newton@Student.Test",
		Name:     "Newton Student",
		Password: "newton123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.UserID)
	assert.Equal(t, "newton@student.test", result.Email)
	assert.Equal(t, "STUDENT", result.Role)
	require.NotNil(t, saved)
	assert.Equal(t, "$2a$12$hashed", saved.PasswordHash())
}

func TestRegisterUseCase_Execute_ExplicitRole(t *testing.T) {
	uc := NewRegisterUseCase(
		&mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				return u.SetID(2)
			},
		},
		&mockHasher{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "glorion@it.test",
		Name:     "Glorion Tech",
		Password: "glorion123",
		Role:     "TECH",
	})

	require.NoError(t, err)
	assert.Equal(t, "TECH", result.Role)
}

func TestRegisterUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{name: "missing email", cmd: RegisterCommand{Name: "N", Password: "p"}},
		{name: "missing name", cmd: RegisterCommand{Email: "a@b.test", Password: "p"}},
		{name: "missing password", cmd: RegisterCommand{Email: "a@b.test", Name: "N"}},
		{name: "malformed email", cmd: RegisterCommand{Email: "not-an-email", Name: "N", Password: "p"}},
		{name: "unknown role", cmd: RegisterCommand{Email: "a@b.test", Name: "N", Password: "p", Role: "SUPERUSER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRegisterUseCase_Execute_DuplicateEmail(t *testing.T) {
	uc := NewRegisterUseCase(
		&mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				return errors.NewConflictError("email already registered")
			},
		},
		&mockHasher{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "newton@student.test",
		Name:     "Newton Student",
		Password: "newton123",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

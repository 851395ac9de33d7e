package usecases

import (
	"context"
	"strings"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
	Role     string
}

type RegisterResult struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	name := strings.TrimSpace(cmd.Name)
	if strings.TrimSpace(cmd.Email) == "" || name == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email, name and password are required")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	role := authorization.RoleStudent
	if cmd.Role != "" {
		role = authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role: " + cmd.Role)
		}
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process credentials")
	}

	newUser, err := user.NewUser(email, name, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// A duplicate email surfaces here as a conflict from the storage
	// unique index; nothing is persisted in that case.
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Infow("duplicate registration rejected", "email", email.String())
		} else {
			uc.logger.Errorw("failed to save user", "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", role.String())

	return &RegisterResult{
		UserID: newUser.ID(),
		Email:  newUser.Email().String(),
		Name:   newUser.Name(),
		Role:   newUser.Role().String(),
	}, nil
}

package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Role *string
}

type ListUsersResult struct {
	Users []dto.UserSummaryDTO
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	var roleFilter *authorization.UserRole
	if query.Role != nil && *query.Role != "" {
		role := authorization.UserRole(*query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role: " + *query.Role)
		}
		roleFilter = &role
	}

	users, err := uc.userRepo.List(ctx, roleFilter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	summaries := make([]dto.UserSummaryDTO, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, *dto.FromUser(u))
	}

	return &ListUsersResult{Users: summaries}, nil
}

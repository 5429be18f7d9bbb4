package usecases

import (
	"context"

	"trackd/internal/application/user/dto"
	"trackd/internal/domain/user"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/id"
	"trackd/internal/shared/logger"
)

type GetUserByIDQuery struct {
	UserID string
}

type GetUserByEmailQuery struct {
	Email string
}

// GetUserByIDUseCase resolves a user by entity ID. Unlike ticket reads,
// a missing user is a plain not-found; the directory is visible to every
// authenticated user.
type GetUserByIDUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserByIDUseCase(userRepo user.Repository, logger logger.Interface) *GetUserByIDUseCase {
	return &GetUserByIDUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserByIDUseCase) Execute(ctx context.Context, query GetUserByIDQuery) (*dto.UserDTO, error) {
	if !id.ValidFormat(query.UserID) {
		return nil, errors.NewValidationError("user ID must be exactly 15 digits")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}

// GetUserByEmailUseCase resolves a user by email address.
type GetUserByEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserByEmailUseCase(userRepo user.Repository, logger logger.Interface) *GetUserByEmailUseCase {
	return &GetUserByEmailUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserByEmailUseCase) Execute(ctx context.Context, query GetUserByEmailQuery) (*dto.UserDTO, error) {
	if query.Email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, query.Email)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}

package usecases

import (
	"context"

	"trackd/internal/application/user/dto"
	"trackd/internal/domain/shared/services"
	"trackd/internal/domain/user"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type EnsureUserCommand struct {
	Subject string
	Name    string
	Email   string
	Picture string
}

// EnsureUserUseCase provisions an account on first login and refreshes
// profile fields on returning logins. Every verified identity token maps
// to exactly one account, keyed by its subject claim.
type EnsureUserUseCase struct {
	userRepo  user.Repository
	allocator services.IDAllocator
	logger    logger.Interface
}

func NewEnsureUserUseCase(
	userRepo user.Repository,
	allocator services.IDAllocator,
	logger logger.Interface,
) *EnsureUserUseCase {
	return &EnsureUserUseCase{
		userRepo:  userRepo,
		allocator: allocator,
		logger:    logger,
	}
}

func (uc *EnsureUserUseCase) Execute(ctx context.Context, cmd EnsureUserCommand) (*dto.UserDTO, error) {
	if cmd.Subject == "" {
		return nil, errors.NewValidationError("subject is required")
	}

	existing, err := uc.userRepo.GetBySubject(ctx, cmd.Subject)
	if err == nil {
		existing.UpdateProfile(cmd.Name, cmd.Email, cmd.Picture)
		if err := uc.userRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to refresh user profile", "user_id", existing.ID(), "error", err)
			return nil, err
		}
		return dto.ToUserDTO(existing), nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	newUser, err := user.NewUser(cmd.Subject, cmd.Name, cmd.Email, cmd.Picture)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	userID, err := uc.allocator.Allocate(ctx, constants.TableUsers)
	if err != nil {
		uc.logger.Errorw("failed to allocate user ID", "error", err)
		return nil, err
	}
	if err := newUser.SetID(userID); err != nil {
		return nil, errors.NewInternalError("failed to assign user ID", err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent first login for the same subject loses the insert
		// race; fall back to the surviving row.
		if errors.IsDuplicateError(err) {
			if winner, getErr := uc.userRepo.GetBySubject(ctx, cmd.Subject); getErr == nil {
				return dto.ToUserDTO(winner), nil
			}
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user provisioned", "user_id", newUser.ID(), "email", newUser.Email())
	return dto.ToUserDTO(newUser), nil
}

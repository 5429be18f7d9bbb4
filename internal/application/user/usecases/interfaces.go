package usecases

import (
	"context"

	"trackd/internal/application/user/dto"
)

type EnsureUserExecutor interface {
	Execute(ctx context.Context, cmd EnsureUserCommand) (*dto.UserDTO, error)
}

type GetUserByIDExecutor interface {
	Execute(ctx context.Context, query GetUserByIDQuery) (*dto.UserDTO, error)
}

type GetUserByEmailExecutor interface {
	Execute(ctx context.Context, query GetUserByEmailQuery) (*dto.UserDTO, error)
}

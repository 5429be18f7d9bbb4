package usecases

import (
	"context"

	"trackd/internal/application/project/dto"
	"trackd/internal/domain/project"
	"trackd/internal/domain/shared/services"
	"trackd/internal/domain/user"
	uservo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

type CreateProjectCommand struct {
	Name        string
	Description string
	ActorID     string
}

// CreateProjectUseCase creates a project. Restricted to Owner-role
// users; this is a role gate, not a per-resource check.
type CreateProjectUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	allocator   services.IDAllocator
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	allocator services.IDAllocator,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		allocator:   allocator,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
		}
		return nil, err
	}
	if !actor.Role().AtLeast(uservo.RoleOwner) {
		uc.logger.Warnw("project creation denied", "actor_id", cmd.ActorID, "role", actor.Role().String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	name := utils.SanitizeText(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	p, err := project.NewProject(name, utils.SanitizeText(cmd.Description), actor.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	projectID, err := uc.allocator.Allocate(ctx, constants.TableProjects)
	if err != nil {
		return nil, err
	}
	if err := p.SetID(projectID); err != nil {
		return nil, errors.NewInternalError("failed to assign project ID", err.Error())
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save project", "error", err)
		return nil, err
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "actor_id", cmd.ActorID)
	return dto.ToProjectDTO(p), nil
}

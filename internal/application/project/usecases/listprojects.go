package usecases

import (
	"context"

	"trackd/internal/application/project/dto"
	"trackd/internal/domain/project"
	"trackd/internal/shared/logger"
)

type ListProjectsQuery struct {
	ActorID string
}

type ListProjectsResult struct {
	Projects []dto.ProjectDTO
}

// ListProjectsUseCase lists every project. Projects carry no per-resource
// access rules; any authenticated user may read the list.
type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	items := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		items = append(items, *dto.ToProjectDTO(p))
	}
	return &ListProjectsResult{Projects: items}, nil
}

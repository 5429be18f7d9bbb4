package mappers

import (
	"time"

	"trackd/internal/domain/project"
	"trackd/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between Project domain entities and persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

// ProjectMapperImpl is the concrete implementation of ProjectMapper.
type ProjectMapperImpl struct{}

// NewProjectMapper creates a new ProjectMapper.
func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedBy:   p.CreatedBy(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		model.CreatedBy,
		time.UnixMilli(model.CreatedAt),
	)
}

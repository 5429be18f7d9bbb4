package dto

import (
	"time"

	"trackd/internal/domain/project"
)

type ProjectDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToProjectDTO(p *project.Project) *ProjectDTO {
	if p == nil {
		return nil
	}
	return &ProjectDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedBy:   p.CreatedBy(),
		CreatedAt:   p.CreatedAt(),
	}
}

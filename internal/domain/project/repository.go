package project

import "context"

// Repository defines the interface for project data operations
type Repository interface {
	Save(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, projectID string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Exists(ctx context.Context, projectID string) (bool, error)
}

// Package project holds the lightweight project grouping. Projects are a
// flat namespace; only Owner-role users may create them.
package project

import (
	"fmt"
	"strings"
	"time"

	"trackd/internal/shared/id"
)

type Project struct {
	id          string
	name        string
	description string
	createdBy   string
	createdAt   time.Time
}

// NewProject creates a project. Name is required and trimmed.
func NewProject(name, description, createdBy string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !id.ValidFormat(createdBy) {
		return nil, fmt.Errorf("invalid creator ID: %s", createdBy)
	}

	return &Project{
		name:        name,
		description: strings.TrimSpace(description),
		createdBy:   createdBy,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructProject rebuilds a project from persisted state.
func ReconstructProject(projectID, name, description, createdBy string, createdAt time.Time) (*Project, error) {
	if !id.ValidFormat(projectID) {
		return nil, fmt.Errorf("invalid project ID: %s", projectID)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Project{
		id:          projectID,
		name:        name,
		description: description,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}, nil
}

func (p *Project) ID() string {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) CreatedBy() string {
	return p.createdBy
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

// SetID assigns the allocated identifier to a newly created project.
func (p *Project) SetID(projectID string) error {
	if p.id != "" {
		return fmt.Errorf("project ID is already set")
	}
	if !id.ValidFormat(projectID) {
		return fmt.Errorf("invalid project ID: %s", projectID)
	}
	p.id = projectID
	return nil
}

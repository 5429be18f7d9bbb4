package mappers

import (
	"fmt"
	"time"

	"trackd/internal/domain/ticket"
	vo "trackd/internal/domain/ticket/valueobjects"
	"trackd/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	// AssignmentToModel converts an assignment domain entity to a persistence model.
	AssignmentToModel(a *ticket.Assignment) *models.AssignmentModel

	// AssignmentToDomain converts an assignment persistence model to a domain entity.
	AssignmentToDomain(model *models.AssignmentModel) (*ticket.Assignment, error)

	// ModificationToModel converts a modification domain entity to a persistence model.
	ModificationToModel(mod *ticket.Modification) *models.ModificationModel

	// ModificationToDomain converts a modification persistence model to a domain entity.
	ModificationToDomain(model *models.ModificationModel) (*ticket.Modification, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		OwnerID:     t.OwnerID(),
		Status:      t.Status().Int(),
		Priority:    t.Priority().Int(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status for ticket %s: %w", model.ID, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority for ticket %s: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.OwnerID,
		status,
		priority,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		time.UnixMilli(model.CreatedAt),
	)
}

// AssignmentToModel converts an assignment domain entity to a persistence model.
func (m *TicketMapperImpl) AssignmentToModel(a *ticket.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		UserID:     a.UserID(),
		AssignedBy: a.AssignedBy(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

// AssignmentToDomain converts an assignment persistence model to a domain entity.
func (m *TicketMapperImpl) AssignmentToDomain(model *models.AssignmentModel) (*ticket.Assignment, error) {
	return ticket.ReconstructAssignment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.AssignedBy,
		time.UnixMilli(model.CreatedAt),
	)
}

// ModificationToModel converts a modification domain entity to a persistence model.
func (m *TicketMapperImpl) ModificationToModel(mod *ticket.Modification) *models.ModificationModel {
	return &models.ModificationModel{
		ID:             mod.ID(),
		TicketID:       mod.TicketID(),
		EditorID:       mod.EditorID(),
		OldTitle:       mod.OldTitle(),
		NewTitle:       mod.NewTitle(),
		OldDescription: mod.OldDescription(),
		NewDescription: mod.NewDescription(),
		CreatedAt:      mod.CreatedAt().UnixMilli(),
	}
}

// ModificationToDomain converts a modification persistence model to a domain entity.
func (m *TicketMapperImpl) ModificationToDomain(model *models.ModificationModel) (*ticket.Modification, error) {
	return ticket.ReconstructModification(
		model.ID,
		model.TicketID,
		model.EditorID,
		model.OldTitle,
		model.NewTitle,
		model.OldDescription,
		model.NewDescription,
		time.UnixMilli(model.CreatedAt),
	)
}

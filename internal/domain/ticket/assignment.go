package ticket

import (
	"fmt"
	"time"

	"trackd/internal/shared/id"
)

// Assignment links a user to a ticket. An assigned user gains view rights
// on the ticket but no manage rights. The (ticket, user) pair is unique;
// the storage layer's constraint is the authority under concurrency.
type Assignment struct {
	id         string
	ticketID   string
	userID     string
	assignedBy string
	createdAt  time.Time
}

// NewAssignment creates an assignment of userID to ticketID.
func NewAssignment(ticketID, userID, assignedBy string) (*Assignment, error) {
	if !id.ValidFormat(ticketID) {
		return nil, fmt.Errorf("invalid ticket ID: %s", ticketID)
	}
	if !id.ValidFormat(userID) {
		return nil, fmt.Errorf("invalid user ID: %s", userID)
	}
	if !id.ValidFormat(assignedBy) {
		return nil, fmt.Errorf("invalid assigner ID: %s", assignedBy)
	}

	return &Assignment{
		ticketID:   ticketID,
		userID:     userID,
		assignedBy: assignedBy,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructAssignment rebuilds an assignment from persisted state.
func ReconstructAssignment(
	assignmentID string,
	ticketID string,
	userID string,
	assignedBy string,
	createdAt time.Time,
) (*Assignment, error) {
	if !id.ValidFormat(assignmentID) {
		return nil, fmt.Errorf("invalid assignment ID: %s", assignmentID)
	}

	return &Assignment{
		id:         assignmentID,
		ticketID:   ticketID,
		userID:     userID,
		assignedBy: assignedBy,
		createdAt:  createdAt,
	}, nil
}

func (a *Assignment) ID() string {
	return a.id
}

func (a *Assignment) TicketID() string {
	return a.ticketID
}

func (a *Assignment) UserID() string {
	return a.userID
}

func (a *Assignment) AssignedBy() string {
	return a.assignedBy
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// SetID assigns the allocated identifier to a newly created assignment.
func (a *Assignment) SetID(assignmentID string) error {
	if a.id != "" {
		return fmt.Errorf("assignment ID is already set")
	}
	if !id.ValidFormat(assignmentID) {
		return fmt.Errorf("invalid assignment ID: %s", assignmentID)
	}
	a.id = assignmentID
	return nil
}

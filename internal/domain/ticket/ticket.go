package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "trackd/internal/domain/ticket/valueobjects"
	"trackd/internal/shared/id"
)

// Ticket is the central aggregate of the tracker. Title and description
// belong exclusively to the owner; status, priority, deletion and
// assignment belong to anyone holding manage rights.
type Ticket struct {
	id          string
	title       string
	description string
	ownerID     string
	status      vo.Status
	priority    vo.Priority
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket for the given owner. Status starts Open and
// priority starts Low.
func NewTicket(title, description, ownerID string) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !id.ValidFormat(ownerID) {
		return nil, fmt.Errorf("invalid owner ID: %s", ownerID)
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		ownerID:     ownerID,
		status:      vo.StatusOpen,
		priority:    vo.PriorityLow,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	ticketID string,
	title string,
	description string,
	ownerID string,
	status vo.Status,
	priority vo.Priority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if !id.ValidFormat(ticketID) {
		return nil, fmt.Errorf("invalid ticket ID: %s", ticketID)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %d", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %d", priority)
	}

	return &Ticket{
		id:          ticketID,
		title:       title,
		description: description,
		ownerID:     ownerID,
		status:      status,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) OwnerID() string {
	return t.ownerID
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsOwnedBy reports whether userID is the exclusive owner of this ticket.
func (t *Ticket) IsOwnedBy(userID string) bool {
	return t.ownerID == userID
}

// SetID assigns the allocated identifier to a newly created ticket.
func (t *Ticket) SetID(ticketID string) error {
	if t.id != "" {
		return fmt.Errorf("ticket ID is already set")
	}
	if !id.ValidFormat(ticketID) {
		return fmt.Errorf("invalid ticket ID: %s", ticketID)
	}
	t.id = ticketID
	return nil
}

// ChangeTitle replaces the title. The caller is responsible for recording
// the modification in the audit trail.
func (t *Ticket) ChangeTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	t.title = title
	t.updatedAt = time.Now()
	return nil
}

// ChangeDescription replaces the description. The caller is responsible
// for recording the modification in the audit trail.
func (t *Ticket) ChangeDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("description cannot be empty")
	}
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the ticket to a new status. No transition table is
// enforced.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %d", newStatus)
	}
	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// ChangePriority moves the ticket to a new priority.
func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %d", newPriority)
	}
	t.priority = newPriority
	t.updatedAt = time.Now()
	return nil
}

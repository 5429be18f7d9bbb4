package ticket

import (
	"fmt"
	"time"

	"trackd/internal/shared/id"
)

// Modification is one audit-trail row recording a title and/or
// description edit. Rows are append-only; nothing updates or deletes
// them. A nil old/new pair means the field did not change in that edit.
type Modification struct {
	id             string
	ticketID       string
	editorID       string
	oldTitle       *string
	newTitle       *string
	oldDescription *string
	newDescription *string
	createdAt      time.Time
}

// NewModification creates an audit row for a successful edit. At least
// one of the title or description pairs must be present.
func NewModification(
	ticketID string,
	editorID string,
	oldTitle, newTitle *string,
	oldDescription, newDescription *string,
) (*Modification, error) {
	if !id.ValidFormat(ticketID) {
		return nil, fmt.Errorf("invalid ticket ID: %s", ticketID)
	}
	if !id.ValidFormat(editorID) {
		return nil, fmt.Errorf("invalid editor ID: %s", editorID)
	}
	if newTitle == nil && newDescription == nil {
		return nil, fmt.Errorf("modification records no changed field")
	}
	if (oldTitle == nil) != (newTitle == nil) {
		return nil, fmt.Errorf("title change requires both old and new values")
	}
	if (oldDescription == nil) != (newDescription == nil) {
		return nil, fmt.Errorf("description change requires both old and new values")
	}

	return &Modification{
		ticketID:       ticketID,
		editorID:       editorID,
		oldTitle:       oldTitle,
		newTitle:       newTitle,
		oldDescription: oldDescription,
		newDescription: newDescription,
		createdAt:      time.Now(),
	}, nil
}

// ReconstructModification rebuilds an audit row from persisted state.
func ReconstructModification(
	modificationID string,
	ticketID string,
	editorID string,
	oldTitle, newTitle *string,
	oldDescription, newDescription *string,
	createdAt time.Time,
) (*Modification, error) {
	if !id.ValidFormat(modificationID) {
		return nil, fmt.Errorf("invalid modification ID: %s", modificationID)
	}

	return &Modification{
		id:             modificationID,
		ticketID:       ticketID,
		editorID:       editorID,
		oldTitle:       oldTitle,
		newTitle:       newTitle,
		oldDescription: oldDescription,
		newDescription: newDescription,
		createdAt:      createdAt,
	}, nil
}

func (m *Modification) ID() string {
	return m.id
}

func (m *Modification) TicketID() string {
	return m.ticketID
}

func (m *Modification) EditorID() string {
	return m.editorID
}

func (m *Modification) OldTitle() *string {
	return m.oldTitle
}

func (m *Modification) NewTitle() *string {
	return m.newTitle
}

func (m *Modification) OldDescription() *string {
	return m.oldDescription
}

func (m *Modification) NewDescription() *string {
	return m.newDescription
}

func (m *Modification) CreatedAt() time.Time {
	return m.createdAt
}

// SetID assigns the allocated identifier to a newly created audit row.
func (m *Modification) SetID(modificationID string) error {
	if m.id != "" {
		return fmt.Errorf("modification ID is already set")
	}
	if !id.ValidFormat(modificationID) {
		return fmt.Errorf("invalid modification ID: %s", modificationID)
	}
	m.id = modificationID
	return nil
}

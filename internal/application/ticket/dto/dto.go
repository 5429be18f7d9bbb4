package dto

import (
	"time"

	"trackd/internal/domain/ticket"
)

type TicketDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Status      int       `json:"status"`
	Priority    int       `json:"priority"`
	Assigned    bool      `json:"assigned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TicketListItemDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	OwnerID   string    `json:"owner_id"`
	Status    int       `json:"status"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ModificationDTO struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticket_id"`
	EditorID       string    `json:"editor_id"`
	OldTitle       *string   `json:"old_title"`
	NewTitle       *string   `json:"new_title"`
	OldDescription *string   `json:"old_description"`
	NewDescription *string   `json:"new_description"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToTicketDTO maps a ticket entity to its transport shape. The assigned
// flag is computed server-side for the requesting actor, never taken
// from the client.
func ToTicketDTO(t *ticket.Ticket, assigned bool) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		OwnerID:     t.OwnerID(),
		Status:      t.Status().Int(),
		Priority:    t.Priority().Int(),
		Assigned:    assigned,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		OwnerID:   t.OwnerID(),
		Status:    t.Status().Int(),
		Priority:  t.Priority().Int(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToModificationDTO(m *ticket.Modification) ModificationDTO {
	return ModificationDTO{
		ID:             m.ID(),
		TicketID:       m.TicketID(),
		EditorID:       m.EditorID(),
		OldTitle:       m.OldTitle(),
		NewTitle:       m.NewTitle(),
		OldDescription: m.OldDescription(),
		NewDescription: m.NewDescription(),
		CreatedAt:      m.CreatedAt(),
	}
}

package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID string) error
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	// List returns the most recently created tickets up to limit.
	List(ctx context.Context, limit int) ([]*Ticket, error)
	// ListByOwner returns tickets owned by userID, newest first.
	ListByOwner(ctx context.Context, userID string, limit int) ([]*Ticket, error)
	// ListByIDs returns the tickets whose IDs appear in ids, newest first.
	ListByIDs(ctx context.Context, ids []string) ([]*Ticket, error)
	Exists(ctx context.Context, ticketID string) (bool, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID string) (*Comment, error)
	GetByTicketID(ctx context.Context, ticketID string) ([]*Comment, error)
	Delete(ctx context.Context, commentID string) error
	DeleteByTicketID(ctx context.Context, ticketID string) error
}

type AssignmentRepository interface {
	Save(ctx context.Context, assignment *Assignment) error
	// Exists reports whether userID is already assigned to ticketID.
	Exists(ctx context.Context, ticketID, userID string) (bool, error)
	GetByTicketID(ctx context.Context, ticketID string) ([]*Assignment, error)
	// TicketIDsByUser returns the IDs of tickets userID is assigned to.
	TicketIDsByUser(ctx context.Context, userID string) ([]string, error)
	DeleteByTicketID(ctx context.Context, ticketID string) error
}

// ModificationRepository persists the append-only audit trail. There is
// deliberately no update or delete.
type ModificationRepository interface {
	Save(ctx context.Context, modification *Modification) error
	GetByTicketID(ctx context.Context, ticketID string) ([]*Modification, error)
}

package ticket

import (
	"context"

	"trackd/internal/domain/user"
)

type mockUserRepository struct {
	CreateFunc       func(ctx context.Context, u *user.User) error
	GetByIDFunc      func(ctx context.Context, id string) (*user.User, error)
	GetBySubjectFunc func(ctx context.Context, subject string) (*user.User, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc       func(ctx context.Context, u *user.User) error
	ExistsFunc       func(ctx context.Context, id string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.CreateFunc(ctx, u)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetBySubject(ctx context.Context, subject string) (*user.User, error) {
	return m.GetBySubjectFunc(ctx, subject)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.UpdateFunc(ctx, u)
}

func (m *mockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *Ticket) error
	UpdateFunc      func(ctx context.Context, t *Ticket) error
	DeleteFunc      func(ctx context.Context, ticketID string) error
	GetByIDFunc     func(ctx context.Context, ticketID string) (*Ticket, error)
	ListFunc        func(ctx context.Context, limit int) ([]*Ticket, error)
	ListByOwnerFunc func(ctx context.Context, userID string, limit int) ([]*Ticket, error)
	ListByIDsFunc   func(ctx context.Context, ids []string) ([]*Ticket, error)
	ExistsFunc      func(ctx context.Context, ticketID string) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *Ticket) error {
	return m.SaveFunc(ctx, t)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *Ticket) error {
	return m.UpdateFunc(ctx, t)
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID string) error {
	return m.DeleteFunc(ctx, ticketID)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID string) (*Ticket, error) {
	return m.GetByIDFunc(ctx, ticketID)
}

func (m *mockTicketRepository) List(ctx context.Context, limit int) ([]*Ticket, error) {
	return m.ListFunc(ctx, limit)
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, userID string, limit int) ([]*Ticket, error) {
	return m.ListByOwnerFunc(ctx, userID, limit)
}

func (m *mockTicketRepository) ListByIDs(ctx context.Context, ids []string) ([]*Ticket, error) {
	return m.ListByIDsFunc(ctx, ids)
}

func (m *mockTicketRepository) Exists(ctx context.Context, ticketID string) (bool, error) {
	return m.ExistsFunc(ctx, ticketID)
}

type mockAssignmentRepository struct {
	SaveFunc             func(ctx context.Context, a *Assignment) error
	ExistsFunc           func(ctx context.Context, ticketID, userID string) (bool, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID string) ([]*Assignment, error)
	TicketIDsByUserFunc  func(ctx context.Context, userID string) ([]string, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID string) error
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *Assignment) error {
	return m.SaveFunc(ctx, a)
}

func (m *mockAssignmentRepository) Exists(ctx context.Context, ticketID, userID string) (bool, error) {
	return m.ExistsFunc(ctx, ticketID, userID)
}

func (m *mockAssignmentRepository) GetByTicketID(ctx context.Context, ticketID string) ([]*Assignment, error) {
	return m.GetByTicketIDFunc(ctx, ticketID)
}

func (m *mockAssignmentRepository) TicketIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return m.TicketIDsByUserFunc(ctx, userID)
}

func (m *mockAssignmentRepository) DeleteByTicketID(ctx context.Context, ticketID string) error {
	return m.DeleteByTicketIDFunc(ctx, ticketID)
}

package usecases

import (
	"context"

	"trackd/internal/domain/ticket"
	"trackd/internal/domain/user"
	"trackd/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc      func(ctx context.Context, ticketID string) error
	GetByIDFunc     func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, limit int) ([]*ticket.Ticket, error)
	ListByOwnerFunc func(ctx context.Context, userID string, limit int) ([]*ticket.Ticket, error)
	ListByIDsFunc   func(ctx context.Context, ids []string) ([]*ticket.Ticket, error)
	ExistsFunc      func(ctx context.Context, ticketID string) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, userID string, limit int) ([]*ticket.Ticket, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByIDs(ctx context.Context, ids []string) ([]*ticket.Ticket, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockTicketRepository) Exists(ctx context.Context, ticketID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, ticketID)
	}
	return false, nil
}

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc          func(ctx context.Context, commentID string) (*ticket.Comment, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID string) ([]*ticket.Comment, error)
	DeleteFunc           func(ctx context.Context, commentID string) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID string) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID string) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID string) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockAssignmentRepository struct {
	SaveFunc             func(ctx context.Context, a *ticket.Assignment) error
	ExistsFunc           func(ctx context.Context, ticketID, userID string) (bool, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID string) ([]*ticket.Assignment, error)
	TicketIDsByUserFunc  func(ctx context.Context, userID string) ([]string, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID string) error
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *ticket.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Exists(ctx context.Context, ticketID, userID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, ticketID, userID)
	}
	return false, nil
}

func (m *mockAssignmentRepository) GetByTicketID(ctx context.Context, ticketID string) ([]*ticket.Assignment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) TicketIDsByUser(ctx context.Context, userID string) ([]string, error) {
	if m.TicketIDsByUserFunc != nil {
		return m.TicketIDsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) DeleteByTicketID(ctx context.Context, ticketID string) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockModificationRepository struct {
	SaveFunc          func(ctx context.Context, m *ticket.Modification) error
	GetByTicketIDFunc func(ctx context.Context, ticketID string) ([]*ticket.Modification, error)
}

func (m *mockModificationRepository) Save(ctx context.Context, mod *ticket.Modification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, mod)
	}
	return nil
}

func (m *mockModificationRepository) GetByTicketID(ctx context.Context, ticketID string) ([]*ticket.Modification, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc       func(ctx context.Context, u *user.User) error
	GetByIDFunc      func(ctx context.Context, id string) (*user.User, error)
	GetBySubjectFunc func(ctx context.Context, subject string) (*user.User, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc       func(ctx context.Context, u *user.User) error
	ExistsFunc       func(ctx context.Context, id string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySubject(ctx context.Context, subject string) (*user.User, error) {
	if m.GetBySubjectFunc != nil {
		return m.GetBySubjectFunc(ctx, subject)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type mockIDAllocator struct {
	AllocateFunc func(ctx context.Context, table string) (string, error)
}

func (m *mockIDAllocator) Allocate(ctx context.Context, table string) (string, error) {
	if m.AllocateFunc != nil {
		return m.AllocateFunc(ctx, table)
	}
	return "999999999999999", nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}

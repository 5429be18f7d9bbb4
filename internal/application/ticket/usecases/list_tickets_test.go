package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackd/internal/domain/ticket"
	"trackd/internal/domain/user"
	uservo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/errors"
)

func reconstructAt(t *testing.T, id, owner string, createdAt time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, "t", "d", owner, 1, 1, createdAt, createdAt)
	require.NoError(t, err)
	return tk
}

func TestListTicketsManagerSeesAll(t *testing.T) {
	manager := fixtureUser(t, managerID, uservo.RoleManager)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return manager, nil
		},
	}

	now := time.Now()
	all := []*ticket.Ticket{
		reconstructAt(t, "100000000000001", ownerID, now),
		reconstructAt(t, "100000000000002", memberID, now.Add(-time.Hour)),
	}
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
			assert.Equal(t, 10, limit)
			return all, nil
		},
	}

	uc := NewListTicketsUseCase(userRepo, ticketRepo, &mockAssignmentRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{ActorID: managerID, Count: 10})

	require.NoError(t, err)
	assert.Len(t, result.Tickets, 2)
}

func TestListTicketsMemberSeesOwnedAndAssigned(t *testing.T) {
	member := fixtureUser(t, memberID, uservo.RoleMember)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return member, nil
		},
	}

	now := time.Now()
	owned := reconstructAt(t, "100000000000001", memberID, now.Add(-2*time.Hour))
	assigned := reconstructAt(t, "100000000000002", ownerID, now)

	ticketRepo := &mockTicketRepository{
		ListByOwnerFunc: func(ctx context.Context, userID string, limit int) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{owned}, nil
		},
		ListByIDsFunc: func(ctx context.Context, ids []string) ([]*ticket.Ticket, error) {
			assert.Equal(t, []string{assigned.ID()}, ids)
			return []*ticket.Ticket{assigned}, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		TicketIDsByUserFunc: func(ctx context.Context, userID string) ([]string, error) {
			return []string{assigned.ID()}, nil
		},
	}

	uc := NewListTicketsUseCase(userRepo, ticketRepo, assignmentRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{ActorID: memberID, Count: 10})

	require.NoError(t, err)
	require.Len(t, result.Tickets, 2)
	// newest first
	assert.Equal(t, assigned.ID(), result.Tickets[0].ID)
	assert.Equal(t, owned.ID(), result.Tickets[1].ID)
}

func TestListTicketsDedupesOwnedAndAssigned(t *testing.T) {
	member := fixtureUser(t, memberID, uservo.RoleMember)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return member, nil
		},
	}

	both := reconstructAt(t, "100000000000001", memberID, time.Now())
	ticketRepo := &mockTicketRepository{
		ListByOwnerFunc: func(ctx context.Context, userID string, limit int) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{both}, nil
		},
		ListByIDsFunc: func(ctx context.Context, ids []string) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{both}, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		TicketIDsByUserFunc: func(ctx context.Context, userID string) ([]string, error) {
			return []string{both.ID()}, nil
		},
	}

	uc := NewListTicketsUseCase(userRepo, ticketRepo, assignmentRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{ActorID: memberID, Count: 10})

	require.NoError(t, err)
	assert.Len(t, result.Tickets, 1)
}

func TestListTicketsCountClamped(t *testing.T) {
	manager := fixtureUser(t, managerID, uservo.RoleManager)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return manager, nil
		},
	}

	var gotLimit int
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
			gotLimit = limit
			return nil, nil
		},
	}

	uc := NewListTicketsUseCase(userRepo, ticketRepo, &mockAssignmentRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{ActorID: managerID, Count: 10000})
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{ActorID: managerID, Count: 0})
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
}

func TestListTicketsUnknownActor(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewListTicketsUseCase(userRepo, &mockTicketRepository{}, &mockAssignmentRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListTicketsQuery{ActorID: unknownUserID, Count: 10})
	assert.Error(t, err)
}

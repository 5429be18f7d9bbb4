package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trackd/internal/domain/ticket"
	"trackd/internal/domain/user"
	uservo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/errors"
)

const (
	ownerID       = "111111111111111"
	memberID      = "222222222222222"
	managerID     = "333333333333333"
	ticketID      = "444444444444444"
	commentID     = "555555555555555"
	allocatedID   = "666666666666666"
	unknownUserID = "777777777777777"
)

func fixtureUser(t *testing.T, id string, role uservo.Role) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "sub-"+id, "name", id+"@example.com", "", role, now, now)
	require.NoError(t, err)
	return u
}

func fixtureTicket(t *testing.T, id, owner string) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, "Broke the phone", "pls fix :)", owner, 1, 1, now, now)
	require.NoError(t, err)
	return tk
}

func fixtureComment(t *testing.T, id, tktID, authorID string) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, tktID, authorID, "a comment", time.Now())
	require.NoError(t, err)
	return c
}

// fixturePolicy wires an AccessPolicy where the given users and ticket
// exist and assignment membership is fixed.
func fixturePolicy(users map[string]*user.User, tk *ticket.Ticket, assigned map[string]bool) *ticket.AccessPolicy {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			if tk != nil && tk.ID() == id {
				return tk, nil
			}
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		ExistsFunc: func(ctx context.Context, tktID, userID string) (bool, error) {
			return assigned[userID], nil
		},
	}
	return ticket.NewAccessPolicy(userRepo, ticketRepo, assignmentRepo)
}

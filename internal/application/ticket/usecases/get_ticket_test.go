package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackd/internal/domain/user"
	uservo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/errors"
)

func TestGetTicketAsOwner(t *testing.T) {
	tk := fixtureTicket(t, ticketID, ownerID)
	users := map[string]*user.User{ownerID: fixtureUser(t, ownerID, uservo.RoleMember)}
	policy := fixturePolicy(users, tk, nil)

	uc := NewGetTicketUseCase(policy, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: ticketID, ActorID: ownerID})

	require.NoError(t, err)
	assert.Equal(t, ticketID, result.ID)
	assert.Equal(t, "Broke the phone", result.Title)
	assert.False(t, result.Assigned, "owner without assignment row reports assigned:false")
}

func TestGetTicketAssignedFlagForAssignee(t *testing.T) {
	tk := fixtureTicket(t, ticketID, ownerID)
	users := map[string]*user.User{memberID: fixtureUser(t, memberID, uservo.RoleMember)}
	policy := fixturePolicy(users, tk, map[string]bool{memberID: true})

	uc := NewGetTicketUseCase(policy, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: ticketID, ActorID: memberID})

	require.NoError(t, err)
	assert.True(t, result.Assigned)
}

func TestGetTicketManagerNotAssigned(t *testing.T) {
	tk := fixtureTicket(t, ticketID, ownerID)
	users := map[string]*user.User{managerID: fixtureUser(t, managerID, uservo.RoleManager)}
	policy := fixturePolicy(users, tk, nil)

	uc := NewGetTicketUseCase(policy, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: ticketID, ActorID: managerID})

	require.NoError(t, err)
	assert.False(t, result.Assigned)
}

func TestGetTicketDeniedAndMissingAreIdentical(t *testing.T) {
	tk := fixtureTicket(t, ticketID, ownerID)
	users := map[string]*user.User{memberID: fixtureUser(t, memberID, uservo.RoleMember)}
	policy := fixturePolicy(users, tk, nil)

	uc := NewGetTicketUseCase(policy, &mockLogger{})

	_, deniedErr := uc.Execute(context.Background(), GetTicketQuery{TicketID: ticketID, ActorID: memberID})
	require.Error(t, deniedErr)
	assert.True(t, errors.IsForbiddenError(deniedErr))

	_, missingErr := uc.Execute(context.Background(), GetTicketQuery{TicketID: "999999999999999", ActorID: memberID})
	require.Error(t, missingErr)
	assert.True(t, errors.IsForbiddenError(missingErr))

	// byte-identical payloads: same type, message, and code
	deniedApp := errors.GetAppError(deniedErr)
	missingApp := errors.GetAppError(missingErr)
	assert.Equal(t, deniedApp.Type, missingApp.Type)
	assert.Equal(t, deniedApp.Message, missingApp.Message)
	assert.Equal(t, deniedApp.Code, missingApp.Code)
}

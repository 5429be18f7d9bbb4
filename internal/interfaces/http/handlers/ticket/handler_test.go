package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "trackd/internal/application/ticket/dto"
	"trackd/internal/application/ticket/usecases"
	"trackd/internal/interfaces/http/handlers/testutil"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, _ usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result    *usecases.ListTicketsResult
	err       error
	lastQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockEditTicketUC struct {
	result *usecases.EditTicketResult
	err    error
}

func (m *mockEditTicketUC) Execute(_ context.Context, _ usecases.EditTicketCommand) (*usecases.EditTicketResult, error) {
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result  *usecases.ChangeStatusResult
	err     error
	lastCmd usecases.ChangeStatusCommand
}

func (m *mockChangeStatusUC) Execute(_ context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockChangePriorityUC struct {
	result *usecases.ChangePriorityResult
	err    error
}

func (m *mockChangePriorityUC) Execute(_ context.Context, _ usecases.ChangePriorityCommand) (*usecases.ChangePriorityResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	result *usecases.DeleteTicketResult
	err    error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result *usecases.AssignTicketResult
	err    error
}

func (m *mockAssignTicketUC) Execute(_ context.Context, _ usecases.AssignTicketCommand) (*usecases.AssignTicketResult, error) {
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *usecases.AddCommentResult
	err    error
}

func (m *mockAddCommentUC) Execute(_ context.Context, _ usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	return m.result, m.err
}

type mockListCommentsUC struct {
	result *usecases.ListCommentsResult
	err    error
}

func (m *mockListCommentsUC) Execute(_ context.Context, _ usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error) {
	return m.result, m.err
}

type mockDeleteCommentUC struct {
	result *usecases.DeleteCommentResult
	err    error
}

func (m *mockDeleteCommentUC) Execute(_ context.Context, _ usecases.DeleteCommentCommand) (*usecases.DeleteCommentResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	editTicketUC     usecases.EditTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	changePriorityUC usecases.ChangePriorityExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	addCommentUC     usecases.AddCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	deleteCommentUC  usecases.DeleteCommentExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.editTicketUC,
		deps.changeStatusUC,
		deps.changePriorityUC,
		deps.deleteTicketUC,
		deps.assignTicketUC,
		deps.addCommentUC,
		deps.listCommentsUC,
		deps.deleteCommentUC,
		testutil.NewMockLogger(),
	)
}

const (
	testUserID   = "111111111111111"
	testTicketID = "444444444444444"
)

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			TicketID:  testTicketID,
			Status:    1,
			Priority:  1,
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{Title: "Broken login", Description: "Cannot sign in"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestTicketHandler_CreateTicket_NotAuthenticated(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := CreateTicketRequest{Title: "Broken login", Description: "Cannot sign in"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	// No auth context set

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	mockUC := &mockGetTicketUC{
		result: &ticketdto.TicketDTO{ID: testTicketID, Title: "Broken login"},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/"+testTicketID, nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/abc", nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_GetTicket_Forbidden(t *testing.T) {
	mockUC := &mockGetTicketUC{
		err: errors.NewForbiddenError(constants.ErrMsgForbidden),
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/"+testTicketID, nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)

	handler.GetTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, constants.ErrMsgForbidden, resp.Error.Message)
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_PassesCount(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetQueryParams(c, map[string]string{"count": "42"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 42, mockUC.lastQuery.Count)
	assert.Equal(t, testUserID, mockUC.lastQuery.ActorID)
}

func TestTicketHandler_ListTickets_GarbageCountFallsBack(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetQueryParams(c, map[string]string{"count": "lots"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, mockUC.lastQuery.Count)
}

// =====================================================================
// ChangeStatus
// =====================================================================

func TestTicketHandler_ChangeStatus_Success(t *testing.T) {
	mockUC := &mockChangeStatusUC{
		result: &usecases.ChangeStatusResult{TicketID: testTicketID, Status: 2},
	}
	handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/"+testTicketID+"/status/2", nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)
	testutil.SetURLParam(c, "value", "2")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, mockUC.lastCmd.Value)
}

func TestTicketHandler_ChangeStatus_NonNumericValue(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/"+testTicketID+"/status/open", nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)
	testutil.SetURLParam(c, "value", "open")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// AssignTicket
// =====================================================================

func TestTicketHandler_AssignTicket_Success(t *testing.T) {
	mockUC := &mockAssignTicketUC{
		result: &usecases.AssignTicketResult{AssignmentID: "777777777777777", TicketID: testTicketID},
	}
	handler := newTestTicketHandler(testDeps{assignTicketUC: mockUC})

	reqBody := AssignTicketRequest{TicketID: testTicketID, UserID: "222222222222222"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/assign", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTicketHandler_AssignTicket_Duplicate(t *testing.T) {
	mockUC := &mockAssignTicketUC{
		err: errors.NewConflictError("user is already assigned to this ticket"),
	}
	handler := newTestTicketHandler(testDeps{assignTicketUC: mockUC})

	reqBody := AssignTicketRequest{TicketID: testTicketID, UserID: "222222222222222"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/assign", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

// =====================================================================
// Comments
// =====================================================================

func TestTicketHandler_AddComment_Success(t *testing.T) {
	mockUC := &mockAddCommentUC{
		result: &usecases.AddCommentResult{CommentID: "666666666666666", TicketID: testTicketID},
	}
	handler := newTestTicketHandler(testDeps{addCommentUC: mockUC})

	reqBody := AddCommentRequest{Content: "Looking into this"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/"+testTicketID+"/comments", reqBody)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)

	handler.AddComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTicketHandler_AddComment_MissingContent(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/"+testTicketID+"/comments", map[string]string{})
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)

	handler.AddComment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_DeleteComment_Success(t *testing.T) {
	mockUC := &mockDeleteCommentUC{
		result: &usecases.DeleteCommentResult{CommentID: "666666666666666"},
	}
	handler := newTestTicketHandler(testDeps{deleteCommentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/comments/666666666666666", nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", "666666666666666")

	handler.DeleteComment(c)
	testutil.FlushStatus(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// =====================================================================
// DeleteTicket
// =====================================================================

func TestTicketHandler_DeleteTicket_Success(t *testing.T) {
	mockUC := &mockDeleteTicketUC{
		result: &usecases.DeleteTicketResult{TicketID: testTicketID},
	}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/"+testTicketID, nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)

	handler.DeleteTicket(c)
	testutil.FlushStatus(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestTicketHandler_DeleteTicket_Forbidden(t *testing.T) {
	mockUC := &mockDeleteTicketUC{
		err: errors.NewForbiddenError(constants.ErrMsgForbidden),
	}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/"+testTicketID, nil)
	testutil.SetAuthContext(c, testUserID)
	testutil.SetURLParam(c, "id", testTicketID)

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "trackd/internal/application/user/dto"
	"trackd/internal/application/user/usecases"
	"trackd/internal/interfaces/http/handlers/testutil"
	"trackd/internal/shared/errors"
)

type mockGetUserByIDUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockGetUserByIDUC) Execute(_ context.Context, _ usecases.GetUserByIDQuery) (*userdto.UserDTO, error) {
	return m.result, m.err
}

type mockGetUserByEmailUC struct {
	result *userdto.UserDTO
	err    error
}

func (m *mockGetUserByEmailUC) Execute(_ context.Context, _ usecases.GetUserByEmailQuery) (*userdto.UserDTO, error) {
	return m.result, m.err
}

func newTestUserHandler(byID usecases.GetUserByIDExecutor, byEmail usecases.GetUserByEmailExecutor) *UserHandler {
	return NewUserHandler(byID, byEmail, testutil.NewMockLogger())
}

const testUserID = "111111111111111"

func TestUserHandler_Me_Success(t *testing.T) {
	mockUC := &mockGetUserByIDUC{
		result: &userdto.UserDTO{ID: testUserID, Name: "Alice", Email: "alice@example.com", Role: 1},
	}
	handler := newTestUserHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/me", nil)
	testutil.SetAuthContext(c, testUserID)

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestUserHandler_Me_NotAuthenticated(t *testing.T) {
	handler := newTestUserHandler(nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_GetByID_NotFoundIsPlain404(t *testing.T) {
	mockUC := &mockGetUserByIDUC{err: errors.NewNotFoundError("user not found")}
	handler := newTestUserHandler(mockUC, nil)

	reqBody := GetUserByIDRequest{UserID: "999999999999999"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/users/get/id", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestUserHandler_GetByID_MissingBody(t *testing.T) {
	handler := newTestUserHandler(nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/users/get/id", map[string]string{})
	testutil.SetAuthContext(c, testUserID)

	handler.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetByEmail_RejectsBadFormat(t *testing.T) {
	handler := newTestUserHandler(nil, nil)

	reqBody := map[string]string{"userEmail": "not-an-email"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/users/get/email", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.GetByEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetByEmail_Success(t *testing.T) {
	mockUC := &mockGetUserByEmailUC{
		result: &userdto.UserDTO{ID: testUserID, Email: "alice@example.com"},
	}
	handler := newTestUserHandler(nil, mockUC)

	reqBody := GetUserByEmailRequest{UserEmail: "alice@example.com"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/users/get/email", reqBody)
	testutil.SetAuthContext(c, testUserID)

	handler.GetByEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

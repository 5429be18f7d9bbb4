package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/user/usecases"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

type UserHandler struct {
	getUserByIDUC    usecases.GetUserByIDExecutor
	getUserByEmailUC usecases.GetUserByEmailExecutor
	logger           logger.Interface
}

func NewUserHandler(
	getUserByIDUC usecases.GetUserByIDExecutor,
	getUserByEmailUC usecases.GetUserByEmailExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUserByIDUC:    getUserByIDUC,
		getUserByEmailUC: getUserByEmailUC,
		logger:           logger,
	}
}

type GetUserByIDRequest struct {
	UserID string `json:"userID" binding:"required"`
}

type GetUserByEmailRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// Me handles GET /api/user/me. The auth middleware has already resolved
// the caller, so this is a plain profile lookup by entity ID.
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserByIDUC.Execute(c.Request.Context(), usecases.GetUserByIDQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetByID handles POST /api/users/get/id
func (h *UserHandler) GetByID(c *gin.Context) {
	var req GetUserByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for get user by id", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.getUserByIDUC.Execute(c.Request.Context(), usecases.GetUserByIDQuery{UserID: req.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetByEmail handles POST /api/users/get/email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	var req GetUserByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for get user by email", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.getUserByEmailUC.Execute(c.Request.Context(), usecases.GetUserByEmailQuery{Email: req.UserEmail})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func currentUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return "", errors.NewUnauthenticatedError("authentication required")
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", errors.NewUnauthenticatedError("authentication required")
	}
	return userID, nil
}

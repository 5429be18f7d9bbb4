package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/project/usecases"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC usecases.CreateProjectExecutor
	listProjectsUC  usecases.ListProjectsExecutor
	logger          logger.Interface
}

func NewProjectHandler(
	createProjectUC usecases.CreateProjectExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createProjectUC,
		listProjectsUC:  listProjectsUC,
		logger:          logger,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Name:        req.Title,
		Description: req.Description,
		ActorID:     userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// List handles GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{ActorID: userID})
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

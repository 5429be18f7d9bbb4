package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/ticket/usecases"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/id"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}

func (r *CreateTicketRequest) ToCommand(actorID string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		ActorID:     actorID,
	}
}

// EditTicketRequest carries owner edits. Omitted fields stay unchanged;
// at least one must be present, which the use case enforces after
// sanitizing.
type EditTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

func (r *EditTicketRequest) ToCommand(ticketID, actorID string) usecases.EditTicketCommand {
	return usecases.EditTicketCommand{
		TicketID:    ticketID,
		ActorID:     actorID,
		Title:       r.Title,
		Description: r.Description,
	}
}

type AssignTicketRequest struct {
	TicketID string `json:"ticketID" binding:"required"`
	UserID   string `json:"userID" binding:"required"`
}

func (r *AssignTicketRequest) ToCommand(actorID string) usecases.AssignTicketCommand {
	return usecases.AssignTicketCommand{
		TicketID:   r.TicketID,
		AssigneeID: r.UserID,
		ActorID:    actorID,
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

// currentUserID returns the entity ID placed in the context by the auth
// middleware.
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

func ticketIDParam(c *gin.Context) (string, error) {
	ticketID := c.Param("id")
	if !id.ValidFormat(ticketID) {
		return "", errors.NewValidationError("ticket ID must be exactly 15 digits")
	}
	return ticketID, nil
}

func commentIDParam(c *gin.Context) (string, error) {
	commentID := c.Param("id")
	if !id.ValidFormat(commentID) {
		return "", errors.NewValidationError("comment ID must be exactly 15 digits")
	}
	return commentID, nil
}

// parseCount reads the count query parameter. Out-of-range values are
// clamped by the list use case.
func parseCount(c *gin.Context) int {
	count, err := strconv.Atoi(c.DefaultQuery("count", "0"))
	if err != nil {
		return 0
	}
	return count
}

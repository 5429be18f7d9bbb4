package usecases

import (
	"context"
	"time"

	"trackd/internal/domain/shared/services"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

type AddCommentCommand struct {
	TicketID string
	ActorID  string
	Content  string
}

type AddCommentResult struct {
	CommentID string
	TicketID  string
	CreatedAt time.Time
}

// AddCommentUseCase attaches a comment to a ticket. Requires can-view:
// an assignee may comment even though they hold no manage rights.
type AddCommentUseCase struct {
	policy      *ticket.AccessPolicy
	commentRepo ticket.CommentRepository
	allocator   services.IDAllocator
	logger      logger.Interface
}

func NewAddCommentUseCase(
	policy *ticket.AccessPolicy,
	commentRepo ticket.CommentRepository,
	allocator services.IDAllocator,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		policy:      policy,
		commentRepo: commentRepo,
		allocator:   allocator,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	content := utils.SanitizeText(cmd.Content)
	if content == "" {
		return nil, errors.NewValidationError("content is required")
	}

	decision, t, err := uc.policy.CanView(ctx, cmd.ActorID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("comment denied", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	comment, err := ticket.NewComment(t.ID(), cmd.ActorID, content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	commentID, err := uc.allocator.Allocate(ctx, constants.TableComments)
	if err != nil {
		return nil, err
	}
	if err := comment.SetID(commentID); err != nil {
		return nil, errors.NewInternalError("failed to assign comment ID", err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", t.ID())
	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  t.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}

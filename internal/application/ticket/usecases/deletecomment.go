package usecases

import (
	"context"

	"trackd/internal/domain/ticket"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID string
	ActorID   string
}

type DeleteCommentResult struct {
	CommentID string
}

// DeleteCommentUseCase removes a comment. Allowed for the comment author
// or anyone holding can-manage on the parent ticket. A missing comment
// surfaces as the same forbidden response as a denied one.
type DeleteCommentUseCase struct {
	policy      *ticket.AccessPolicy
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	policy *ticket.AccessPolicy,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		policy:      policy,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "actor_id", cmd.ActorID)

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
		}
		return nil, err
	}

	if !comment.IsAuthoredBy(cmd.ActorID) {
		decision, _, err := uc.policy.CanManage(ctx, cmd.ActorID, comment.TicketID())
		if err != nil {
			return nil, err
		}
		if decision != ticket.DecisionAllowed {
			uc.logger.Warnw("comment deletion denied", "comment_id", cmd.CommentID, "actor_id", cmd.ActorID, "decision", decision.String())
			return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
		}
	}

	if err := uc.commentRepo.Delete(ctx, comment.ID()); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", comment.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("comment deleted", "comment_id", comment.ID(), "actor_id", cmd.ActorID)
	return &DeleteCommentResult{CommentID: comment.ID()}, nil
}

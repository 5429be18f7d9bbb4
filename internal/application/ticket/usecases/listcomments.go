package usecases

import (
	"context"

	"trackd/internal/application/ticket/dto"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID string
	ActorID  string
}

type ListCommentsResult struct {
	Comments []dto.CommentDTO
}

// ListCommentsUseCase returns the comments of a ticket the actor can
// view, oldest first.
type ListCommentsUseCase struct {
	policy      *ticket.AccessPolicy
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	policy *ticket.AccessPolicy,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		policy:      policy,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	uc.logger.Infow("executing list comments use case", "ticket_id", query.TicketID, "actor_id", query.ActorID)

	decision, t, err := uc.policy.CanView(ctx, query.ActorID, query.TicketID)
	if err != nil {
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("comment listing denied", "ticket_id", query.TicketID, "actor_id", query.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	items := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		items = append(items, dto.ToCommentDTO(c))
	}

	return &ListCommentsResult{Comments: items}, nil
}

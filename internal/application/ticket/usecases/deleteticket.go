package usecases

import (
	"context"

	"trackd/internal/domain/ticket"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
	ActorID  string
}

type DeleteTicketResult struct {
	TicketID string
}

// DeleteTicketUseCase removes a ticket together with its comments and
// assignments. Requires can-manage. Audit-trail rows are append-only and
// survive the ticket.
type DeleteTicketUseCase struct {
	policy         *ticket.AccessPolicy
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	assignmentRepo ticket.AssignmentRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	policy *ticket.AccessPolicy,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	assignmentRepo ticket.AssignmentRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		policy:         policy,
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	decision, t, err := uc.policy.CanManage(ctx, cmd.ActorID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("ticket deletion denied", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		if err := uc.assignmentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "actor_id", cmd.ActorID)
	return &DeleteTicketResult{TicketID: t.ID()}, nil
}

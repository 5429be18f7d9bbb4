package usecases

import (
	"context"

	"trackd/internal/domain/ticket"
	vo "trackd/internal/domain/ticket/valueobjects"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type ChangePriorityCommand struct {
	TicketID string
	ActorID  string
	Value    int
}

type ChangePriorityResult struct {
	TicketID string
	Priority int
}

// ChangePriorityUseCase moves a ticket between priorities. Requires
// can-manage.
type ChangePriorityUseCase struct {
	policy     *ticket.AccessPolicy
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangePriorityUseCase(
	policy *ticket.AccessPolicy,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		policy:     policy,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error) {
	uc.logger.Infow("executing change priority use case", "ticket_id", cmd.TicketID, "value", cmd.Value)

	priority, err := vo.NewPriority(cmd.Value)
	if err != nil {
		return nil, errors.NewValidationError("priority must be an integer between 1 and 3")
	}

	decision, t, err := uc.policy.CanManage(ctx, cmd.ActorID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("priority change denied", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	if err := t.ChangePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket priority", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket priority changed", "ticket_id", t.ID(), "priority", priority.Int())
	return &ChangePriorityResult{TicketID: t.ID(), Priority: priority.Int()}, nil
}

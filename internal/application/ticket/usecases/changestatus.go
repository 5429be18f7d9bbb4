package usecases

import (
	"context"

	"trackd/internal/domain/ticket"
	vo "trackd/internal/domain/ticket/valueobjects"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID string
	ActorID  string
	Value    int
}

type ChangeStatusResult struct {
	TicketID string
	Status   int
}

// ChangeStatusUseCase moves a ticket between statuses. Requires
// can-manage; the value must be in range before authorization is
// consulted.
type ChangeStatusUseCase struct {
	policy     *ticket.AccessPolicy
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	policy *ticket.AccessPolicy,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		policy:     policy,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "value", cmd.Value)

	status, err := vo.NewStatus(cmd.Value)
	if err != nil {
		return nil, errors.NewValidationError("status must be an integer between 1 and 3")
	}

	decision, t, err := uc.policy.CanManage(ctx, cmd.ActorID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("status change denied", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	if err := t.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "status", status.Int())
	return &ChangeStatusResult{TicketID: t.ID(), Status: status.Int()}, nil
}

package usecases

import (
	"context"

	"trackd/internal/application/ticket/dto"
	"trackd/internal/domain/ticket"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
	ActorID  string
}

// GetTicketUseCase loads a single ticket for an actor holding can-view.
// A missing ticket and a ticket the actor cannot view produce identical
// forbidden responses.
type GetTicketUseCase struct {
	policy *ticket.AccessPolicy
	logger logger.Interface
}

func NewGetTicketUseCase(
	policy *ticket.AccessPolicy,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		policy: policy,
		logger: logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", query.TicketID, "actor_id", query.ActorID)

	decision, t, err := uc.policy.CanView(ctx, query.ActorID, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to evaluate view access", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("ticket view denied", "ticket_id", query.TicketID, "actor_id", query.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	assigned, err := uc.policy.IsAssigned(ctx, t.ID(), query.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to check assignment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t, assigned), nil
}

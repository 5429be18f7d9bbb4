package usecases

import (
	"context"

	"trackd/internal/domain/shared/services"
	"trackd/internal/domain/ticket"
	"trackd/internal/domain/user"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   string
	AssigneeID string
	ActorID    string
}

type AssignTicketResult struct {
	AssignmentID string
	TicketID     string
	AssigneeID   string
}

// AssignTicketUseCase links a user to a ticket. Requires can-manage on
// the ticket. A missing assignee is a validation error, not a merged
// forbidden: the actor already proved manage rights, so hiding user
// existence buys nothing. A duplicate (ticket, user) pair is a conflict.
type AssignTicketUseCase struct {
	policy         *ticket.AccessPolicy
	userRepo       user.Repository
	assignmentRepo ticket.AssignmentRepository
	allocator      services.IDAllocator
	logger         logger.Interface
}

func NewAssignTicketUseCase(
	policy *ticket.AccessPolicy,
	userRepo user.Repository,
	assignmentRepo ticket.AssignmentRepository,
	allocator services.IDAllocator,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		policy:         policy,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		allocator:      allocator,
		logger:         logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "actor_id", cmd.ActorID)

	decision, t, err := uc.policy.CanManage(ctx, cmd.ActorID, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if decision != ticket.DecisionAllowed {
		uc.logger.Warnw("assignment denied", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID, "decision", decision.String())
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	assigneeExists, err := uc.userRepo.Exists(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if !assigneeExists {
		return nil, errors.NewValidationError("assignee does not exist")
	}

	alreadyAssigned, err := uc.assignmentRepo.Exists(ctx, t.ID(), cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if alreadyAssigned {
		return nil, errors.NewConflictError("user is already assigned to this ticket")
	}

	assignment, err := ticket.NewAssignment(t.ID(), cmd.AssigneeID, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	assignmentID, err := uc.allocator.Allocate(ctx, constants.TableUserAssignments)
	if err != nil {
		return nil, err
	}
	if err := assignment.SetID(assignmentID); err != nil {
		return nil, errors.NewInternalError("failed to assign assignment ID", err.Error())
	}

	if err := uc.assignmentRepo.Save(ctx, assignment); err != nil {
		// The unique index is the authority under concurrent inserts; a
		// racing duplicate surfaces here.
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError("user is already assigned to this ticket")
		}
		uc.logger.Errorw("failed to save assignment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", cmd.AssigneeID)
	return &AssignTicketResult{
		AssignmentID: assignment.ID(),
		TicketID:     t.ID(),
		AssigneeID:   cmd.AssigneeID,
	}, nil
}

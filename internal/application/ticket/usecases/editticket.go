package usecases

import (
	"context"

	"trackd/internal/domain/shared/services"
	"trackd/internal/domain/ticket"
	"trackd/internal/domain/user"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

type EditTicketCommand struct {
	TicketID    string
	ActorID     string
	Title       *string
	Description *string
}

type EditTicketResult struct {
	TicketID string
}

// EditTicketUseCase changes a ticket's title and/or description. Only the
// ticket owner may edit content; a Manager acting on someone else's
// ticket is refused. Every successful edit appends exactly one audit row
// inside the same transaction as the update.
type EditTicketUseCase struct {
	userRepo         user.Repository
	ticketRepo       ticket.TicketRepository
	modificationRepo ticket.ModificationRepository
	allocator        services.IDAllocator
	txManager        TransactionManager
	logger           logger.Interface
}

func NewEditTicketUseCase(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	modificationRepo ticket.ModificationRepository,
	allocator services.IDAllocator,
	txManager TransactionManager,
	logger logger.Interface,
) *EditTicketUseCase {
	return &EditTicketUseCase{
		userRepo:         userRepo,
		ticketRepo:       ticketRepo,
		modificationRepo: modificationRepo,
		allocator:        allocator,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *EditTicketUseCase) Execute(ctx context.Context, cmd EditTicketCommand) (*EditTicketResult, error) {
	uc.logger.Infow("executing edit ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	newTitle, newDescription, err := uc.sanitizeFields(cmd)
	if err != nil {
		return nil, err
	}

	_, err = uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
		}
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
		}
		return nil, err
	}

	// Content edits are owner-exclusive. can-manage deliberately does not
	// apply here.
	if !t.IsOwnedBy(cmd.ActorID) {
		uc.logger.Warnw("non-owner attempted content edit", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
		return nil, errors.NewForbiddenError(constants.ErrMsgForbidden)
	}

	var oldTitle, oldDescription *string
	if newTitle != nil {
		prev := t.Title()
		oldTitle = &prev
		if err := t.ChangeTitle(*newTitle); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if newDescription != nil {
		prev := t.Description()
		oldDescription = &prev
		if err := t.ChangeDescription(*newDescription); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	modification, err := ticket.NewModification(t.ID(), cmd.ActorID, oldTitle, newTitle, oldDescription, newDescription)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	modificationID, err := uc.allocator.Allocate(ctx, constants.TableTicketModifications)
	if err != nil {
		return nil, err
	}
	if err := modification.SetID(modificationID); err != nil {
		return nil, errors.NewInternalError("failed to assign modification ID", err.Error())
	}

	// The update and its audit row commit or roll back together so the
	// trail never disagrees with the ticket.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.modificationRepo.Save(txCtx, modification)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist ticket edit", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket edited", "ticket_id", t.ID(), "actor_id", cmd.ActorID)
	return &EditTicketResult{TicketID: t.ID()}, nil
}

// sanitizeFields trims and strips markup from the supplied fields. At
// least one field must remain non-empty.
func (uc *EditTicketUseCase) sanitizeFields(cmd EditTicketCommand) (newTitle, newDescription *string, err error) {
	if cmd.Title != nil {
		cleaned := utils.SanitizeText(*cmd.Title)
		if cleaned != "" {
			newTitle = &cleaned
		}
	}
	if cmd.Description != nil {
		cleaned := utils.SanitizeText(*cmd.Description)
		if cleaned != "" {
			newDescription = &cleaned
		}
	}
	if newTitle == nil && newDescription == nil {
		return nil, nil, errors.NewValidationError("at least one of title or description must be provided")
	}
	return newTitle, newDescription, nil
}

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

type CreateTicketCommand struct {
	Title       string
	Description string
	ActorID     string
}

type CreateTicketResult struct {
	TicketID  string
	Status    int
	Priority  int
	CreatedAt time.Time
}

// CreateTicketUseCase files a new ticket. Any authenticated user may
// create; there is no role gate.
type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	allocator  services.IDAllocator
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	allocator services.IDAllocator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		allocator:  allocator,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "actor_id", cmd.ActorID)

	title := utils.SanitizeText(cmd.Title)
	description := utils.SanitizeText(cmd.Description)

	if title == "" {
		return nil, errors.NewValidationError("title is required")
	}
	if description == "" {
		return nil, errors.NewValidationError("description is required")
	}

	newTicket, err := ticket.NewTicket(title, description, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	ticketID, err := uc.allocator.Allocate(ctx, constants.TableTickets)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket ID", "error", err)
		return nil, err
	}
	if err := newTicket.SetID(ticketID); err != nil {
		return nil, errors.NewInternalError("failed to assign ticket ID", err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "owner_id", newTicket.OwnerID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().Int(),
		Priority:  newTicket.Priority().Int(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

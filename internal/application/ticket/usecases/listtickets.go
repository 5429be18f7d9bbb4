package usecases

import (
	"context"
	"sort"

	"trackd/internal/application/ticket/dto"
	"trackd/internal/domain/ticket"
	"trackd/internal/domain/user"
	uservo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/logger"
)

type ListTicketsQuery struct {
	ActorID string
	Count   int
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
}

// ListTicketsUseCase returns the tickets visible to the actor, newest
// first. Manager and above see the whole table; a Member sees the union
// of owned and assigned tickets.
type ListTicketsUseCase struct {
	userRepo       user.Repository
	ticketRepo     ticket.TicketRepository
	assignmentRepo ticket.AssignmentRepository
	logger         logger.Interface
}

func NewListTicketsUseCase(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	assignmentRepo ticket.AssignmentRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		userRepo:       userRepo,
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	count := query.Count
	if count <= 0 {
		count = constants.DefaultTicketCount
	}
	if count > constants.MaxTicketCount {
		count = constants.MaxTicketCount
	}

	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to resolve actor", "actor_id", query.ActorID, "error", err)
		return nil, err
	}

	var tickets []*ticket.Ticket
	if actor.Role().AtLeast(uservo.RoleManager) {
		tickets, err = uc.ticketRepo.List(ctx, count)
		if err != nil {
			return nil, err
		}
	} else {
		tickets, err = uc.visibleToMember(ctx, actor.ID(), count)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	uc.logger.Infow("tickets listed", "actor_id", query.ActorID, "count", len(items))
	return &ListTicketsResult{Tickets: items}, nil
}

// visibleToMember merges owned and assigned tickets, dedupes, and caps
// the result at count newest tickets.
func (uc *ListTicketsUseCase) visibleToMember(ctx context.Context, actorID string, count int) ([]*ticket.Ticket, error) {
	owned, err := uc.ticketRepo.ListByOwner(ctx, actorID, count)
	if err != nil {
		return nil, err
	}

	assignedIDs, err := uc.assignmentRepo.TicketIDsByUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(owned))
	merged := make([]*ticket.Ticket, 0, len(owned)+len(assignedIDs))
	for _, t := range owned {
		seen[t.ID()] = true
		merged = append(merged, t)
	}

	if len(assignedIDs) > 0 {
		assigned, err := uc.ticketRepo.ListByIDs(ctx, assignedIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range assigned {
			if !seen[t.ID()] {
				seen[t.ID()] = true
				merged = append(merged, t)
			}
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt().After(merged[j].CreatedAt())
	})
	if len(merged) > count {
		merged = merged[:count]
	}
	return merged, nil
}

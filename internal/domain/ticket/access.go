package ticket

import (
	"context"
	"fmt"

	"trackd/internal/domain/user"
	uservo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/errors"
)

// Decision is the outcome of an authorization check. TargetMissing means
// the actor or the ticket does not exist; callers must surface it with
// the same response as Denied so probing for valid IDs reveals nothing.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionDenied
	DecisionTargetMissing
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionDenied:
		return "denied"
	case DecisionTargetMissing:
		return "target_missing"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// AccessPolicy evaluates the two authorization predicates of the tracker.
//
// can-view:   role >= Manager, or ticket owner, or assigned to the ticket.
// can-manage: role >= Manager, or ticket owner. Assignment grants no
// manage rights.
//
// Both predicates are evaluated server-side on every request; callers
// never trust client-supplied ownership or assignment flags.
type AccessPolicy struct {
	users       user.Repository
	tickets     TicketRepository
	assignments AssignmentRepository
}

// NewAccessPolicy creates an access policy backed by the given repositories.
func NewAccessPolicy(
	users user.Repository,
	tickets TicketRepository,
	assignments AssignmentRepository,
) *AccessPolicy {
	return &AccessPolicy{
		users:       users,
		tickets:     tickets,
		assignments: assignments,
	}
}

// CanView decides whether actorID may read ticketID. On Allowed and
// Denied the loaded ticket is returned so callers avoid a second lookup.
func (p *AccessPolicy) CanView(ctx context.Context, actorID, ticketID string) (Decision, *Ticket, error) {
	actor, t, decision, err := p.loadTargets(ctx, actorID, ticketID)
	if decision != DecisionAllowed || err != nil {
		return decision, nil, err
	}

	if actor.Role().AtLeast(uservo.RoleManager) {
		return DecisionAllowed, t, nil
	}
	if t.IsOwnedBy(actor.ID()) {
		return DecisionAllowed, t, nil
	}

	assigned, err := p.assignments.Exists(ctx, t.ID(), actor.ID())
	if err != nil {
		return DecisionDenied, nil, err
	}
	if assigned {
		return DecisionAllowed, t, nil
	}

	return DecisionDenied, t, nil
}

// CanManage decides whether actorID may mutate ticketID (status,
// priority, deletion, assignment). Assignment to the ticket is
// deliberately not consulted.
func (p *AccessPolicy) CanManage(ctx context.Context, actorID, ticketID string) (Decision, *Ticket, error) {
	actor, t, decision, err := p.loadTargets(ctx, actorID, ticketID)
	if decision != DecisionAllowed || err != nil {
		return decision, nil, err
	}

	if actor.Role().AtLeast(uservo.RoleManager) {
		return DecisionAllowed, t, nil
	}
	if t.IsOwnedBy(actor.ID()) {
		return DecisionAllowed, t, nil
	}

	return DecisionDenied, t, nil
}

// IsAssigned reports whether actorID holds an assignment on ticketID.
func (p *AccessPolicy) IsAssigned(ctx context.Context, ticketID, actorID string) (bool, error) {
	return p.assignments.Exists(ctx, ticketID, actorID)
}

// loadTargets resolves the actor and the ticket. Existence is checked
// before any predicate: a missing actor or ticket short-circuits to
// TargetMissing.
func (p *AccessPolicy) loadTargets(ctx context.Context, actorID, ticketID string) (*user.User, *Ticket, Decision, error) {
	actor, err := p.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil, DecisionTargetMissing, nil
		}
		return nil, nil, DecisionDenied, err
	}

	t, err := p.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil, DecisionTargetMissing, nil
		}
		return nil, nil, DecisionDenied, err
	}

	return actor, t, DecisionAllowed, nil
}

package status

import (
	"fmt"
	"time"

	"marketplace-service/internal/models"
)

// Actor roles
const (
	RoleVendor = "VENDOR"
	RoleAdmin  = "ADMIN"
)

// vendorTransitions is the fixed fulfillment chain a vendor may drive.
// Cancellation is only reachable from PENDING.
var vendorTransitions = map[string][]string{
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {Processing},
	Processing: {Shipped},
	Shipped:    {Delivered},
	Delivered:  {},
	Cancelled:  {},
	Refunded:   {},
}

// IllegalTransitionError is returned when the target status is not
// reachable from the current status for the acting role.
type IllegalTransitionError struct {
	From string
	To   string
	Role string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s for role %s", e.From, e.To, e.Role)
}

// TerminalStateError is returned when a mutation is attempted on an
// order already in a terminal status.
type TerminalStateError struct {
	Status string
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("order is in terminal status %s", e.Status)
}

// AllowedTransitions returns the set of statuses reachable from current
// for the given role. Terminal statuses yield an empty set for every
// role. Admins may move any non-terminal order to any other status.
func AllowedTransitions(current, role string) ([]string, error) {
	if !IsValid(current) {
		return nil, &UnknownStatusError{Status: current}
	}
	if IsTerminal(current) {
		return []string{}, nil
	}

	if role == RoleAdmin {
		targets := make([]string, 0, len(All)-1)
		for _, s := range All {
			if s != current {
				targets = append(targets, s)
			}
		}
		return targets, nil
	}

	// Copy so callers cannot corrupt the shared table.
	targets := make([]string, len(vendorTransitions[current]))
	copy(targets, vendorTransitions[current])
	return targets, nil
}

// CanTransition reports whether current -> target is legal for role.
func CanTransition(current, target, role string) bool {
	allowed, err := AllowedTransitions(current, role)
	if err != nil {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// CanCancel reports whether role may cancel an order in the given
// status. Vendors only from PENDING; admins from any non-terminal state.
func CanCancel(current, role string) bool {
	return CanTransition(current, Cancelled, role)
}

// ApplyTransition validates and applies a status transition, returning a
// copy of the order with the new status, note, refreshed UpdatedAt, and
// incremented Version. The original order is not mutated; the store's
// optimistic version check makes the persisted update lose-proof under
// concurrent transitions.
func ApplyTransition(order *models.Order, target, role, note string) (*models.Order, error) {
	if !IsValid(order.Status) {
		return nil, &UnknownStatusError{Status: order.Status}
	}
	if !IsValid(target) {
		return nil, &UnknownStatusError{Status: target}
	}
	if IsTerminal(order.Status) {
		return nil, &TerminalStateError{Status: order.Status}
	}
	if !CanTransition(order.Status, target, role) {
		return nil, &IllegalTransitionError{From: order.Status, To: target, Role: role}
	}

	updated := *order
	updated.Status = target
	if note != "" {
		updated.Note = note
	}
	updated.Version = order.Version + 1
	updated.UpdatedAt = time.Now()
	return &updated, nil
}

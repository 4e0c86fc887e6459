package order

import (
	"errors"
	"fmt"

	"orderhub/internal/pkg/errs"
)

var (
	// ErrInvalidStatus is returned for status values outside the lifecycle.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", errs.ErrValueIsInvalid)

	// ErrTransitionNotAllowed is returned when a status would skip, go backwards or leave a terminal state.
	ErrTransitionNotAllowed = fmt.Errorf("%w: status transition is not allowed", errs.ErrValueIsInvalid)
)

// Status is a step of the order lifecycle.
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │           │            │             │
//	   └───────────┴────────────┴─────────────┴──> Cancelled
type Status int

const (
	Unknown Status = iota
	Pending
	Assigned
	PickedUp
	InTransit
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Assigned:  "assigned",
	PickedUp:  "picked_up",
	InTransit: "in_transit",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

// ParseStatus converts the wire name of a status. Unknown names fail with ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is dispatched but not yet finished.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}

// Next returns the immediate successor in the forward sequence.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Assigned, true
	case Assigned:
		return PickedUp, true
	case PickedUp:
		return InTransit, true
	case InTransit:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil || s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	next, ok := s.Next()
	return ok && next == target
}

// ValidateTransition is CanTransitionTo with a descriptive error.
func (s Status) ValidateTransition(target Status) error {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return err
	}
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, s, target)
	}
	return nil
}

// RequiresAssignee reports whether an order in this status must carry an assignee.
func (s Status) RequiresAssignee() bool {
	return s == Assigned || s == PickedUp || s == InTransit || s == Delivered
}

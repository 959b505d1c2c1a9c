package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/assignment"
)

// ignoredDrop reports whether an assignment error means "nothing to do".
// The drop is answered with applied=false instead of an error.
func ignoredDrop(err error) bool {
	return errors.Is(err, assignment.ErrAlreadyAssigned) || errors.Is(err, assignment.ErrSameTarget)
}

// assignmentError converts an assignment error into a Connect error.
func assignmentError(err error) error {
	switch {
	case errors.Is(err, assignment.ErrNoRemainingQuantity),
		errors.Is(err, assignment.ErrNotHeld),
		errors.Is(err, assignment.ErrAlreadyAssigned):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, assignment.ErrInvalidQuantity),
		errors.Is(err, assignment.ErrInvalidTarget),
		errors.Is(err, assignment.ErrSameTarget):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// intentOutcome labels an assignment error for the intents counter.
func intentOutcome(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, assignment.ErrSameTarget):
		return "same_target"
	case errors.Is(err, assignment.ErrNoRemainingQuantity):
		return "no_remaining"
	case errors.Is(err, assignment.ErrNotHeld):
		return "not_held"
	case errors.Is(err, assignment.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, assignment.ErrInvalidTarget):
		return "invalid_target"
	default:
		return "error"
	}
}

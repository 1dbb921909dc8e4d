package appointment

import (
	"fmt"
	"strings"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// allowedTransitions is the whole lifecycle: completed and canceled are
// terminal. Identity transitions are always allowed and handled in
// ValidateTransition, not listed here.
var allowedTransitions = map[Status][]Status{
	StatusScheduled: {StatusCompleted, StatusCanceled},
	StatusCompleted: {},
	StatusCanceled:  {},
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func (s Status) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func InitialStatus() Status {
	return StatusScheduled
}

// ValidateTransition rejects illegal status changes. The identity
// transition is always a legal no-op, including on terminal states.
func ValidateTransition(current, requested Status) error {
	if requested == current {
		return nil
	}
	allowed := allowedTransitions[current]
	for _, s := range allowed {
		if s == requested {
			return nil
		}
	}
	return httperr.InvalidRequestError(fmt.Sprintf(
		"invalid status transition from %s to %s: allowed next statuses: %s",
		current, requested, formatAllowed(allowed),
	))
}

func formatAllowed(allowed []Status) string {
	if len(allowed) == 0 {
		return "none — final state"
	}
	parts := make([]string, len(allowed))
	for i, s := range allowed {
		parts[i] = string(s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

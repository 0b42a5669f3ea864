package booking

import (
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses are the statuses that occupy capacity.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// InitialStatus is what the public booking flow writes.
func InitialStatus() Status {
	return StatusConfirmed
}

// CanTransition allows pending -> confirmed and any active status ->
// cancelled. Cancelled is terminal; staying put is always allowed.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCancelled {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

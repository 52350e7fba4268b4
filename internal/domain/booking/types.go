package booking

import "fmt"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

const (
	PaymentStatusPending = "PENDING"
	DefaultCancelReason  = "Customer request"
)

// transitions lists every legal next state. States absent from the map are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusCheckedIn,
		StatusCheckedOut,
		StatusCancelled,
		StatusNoShow,
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsModifiable covers both update and cancel eligibility.
func (s Status) IsModifiable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsActive reports a booking that still holds or occupies a room.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

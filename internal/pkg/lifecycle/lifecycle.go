// Package lifecycle holds the booking state machines. Every permitted action, its
// precondition and its effect live in a single transition table per booking kind, so
// the actions offered to an operator and the checks applied before a mutation never
// disagree.
package lifecycle

import (
	"fmt"

	"github.com/urbancabz/console/internal/pkg/apperror"
	"github.com/urbancabz/console/internal/pkg/models"
)

// Action is an operator action on a booking
type Action string

const (
	ActionAssign        Action = "ASSIGN"
	ActionStart         Action = "START"
	ActionComplete      Action = "COMPLETE"
	ActionCancel        Action = "CANCEL"
	ActionRecordPayment Action = "RECORD_PAYMENT"
)

// State is the part of a booking the transition guards look at.
// Status, TaxiAssignStatus and PaymentStatus are independent axes.
type State struct {
	Status           models.BookingStatus
	TaxiAssignStatus models.TaxiAssignStatus
	PaymentStatus    models.PaymentStatus
	HasAssignment    bool
}

// Transition is one row of a transition table
type Transition struct {
	Action Action
	Label  string
	Guard  func(State) bool
	Apply  func(State) State
}

// Table is an ordered list of transitions for one booking kind
type Table struct {
	name        string
	transitions []Transition
}

// NewTable builds a table. Row order is the order actions are offered in.
func NewTable(name string, transitions ...Transition) *Table {
	return &Table{name: name, transitions: transitions}
}

// Name identifies the table in errors and logs
func (t *Table) Name() string {
	return t.name
}

// Allowed lists the actions permitted in the given state
func (t *Table) Allowed(s State) []Action {
	actions := make([]Action, 0, len(t.transitions))
	for _, tr := range t.transitions {
		if tr.Guard(s) {
			actions = append(actions, tr.Action)
		}
	}
	return actions
}

// Options is Allowed with display labels
func (t *Table) Options(s State) []models.ActionOption {
	options := make([]models.ActionOption, 0, len(t.transitions))
	for _, tr := range t.transitions {
		if tr.Guard(s) {
			options = append(options, models.ActionOption{Action: string(tr.Action), Label: tr.Label})
		}
	}
	return options
}

// Can reports whether the action is permitted in the given state
func (t *Table) Can(s State, a Action) bool {
	_, err := t.Next(s, a)
	return err == nil
}

// Next returns the state the action leads to, or ErrActionNotAllowed
func (t *Table) Next(s State, a Action) (State, error) {
	for _, tr := range t.transitions {
		if tr.Action != a {
			continue
		}
		if !tr.Guard(s) {
			break
		}
		return tr.Apply(s), nil
	}
	return s, fmt.Errorf("%w: %s %s from status %s", apperror.ErrActionNotAllowed, t.name, a, s.Status)
}

// B2CState extracts the guard inputs from a customer booking
func B2CState(b *models.Booking) State {
	return State{
		Status:           b.Status,
		TaxiAssignStatus: b.TaxiAssignStatus,
		HasAssignment:    b.TaxiAssignStatus == models.TaxiAssigned,
	}
}

// B2BState extracts the guard inputs from a corporate booking
func B2BState(b *models.B2BBooking) State {
	return State{
		Status:           b.Status,
		TaxiAssignStatus: b.TaxiAssignStatus,
		PaymentStatus:    b.PaymentStatus,
		HasAssignment:    b.HasAssignment(),
	}
}

func statusIn(s State, statuses ...models.BookingStatus) bool {
	for _, st := range statuses {
		if s.Status == st {
			return true
		}
	}
	return false
}

func withStatus(status models.BookingStatus) func(State) State {
	return func(s State) State {
		s.Status = status
		return s
	}
}

func assigned(s State) State {
	s.TaxiAssignStatus = models.TaxiAssigned
	s.HasAssignment = true
	return s
}

// B2C is the customer booking state machine:
// PENDING_PAYMENT -> PAID -> IN_PROGRESS -> COMPLETED, CANCELLED from PAID or IN_PROGRESS.
// taxi_assign_status gates Start without being a status value.
var B2C = NewTable("b2c",
	Transition{
		Action: ActionAssign,
		Label:  "Assign & Dispatch",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusPaid && s.TaxiAssignStatus != models.TaxiAssigned
		},
		Apply: assigned,
	},
	Transition{
		Action: ActionStart,
		Label:  "Start Trip",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusPaid && s.TaxiAssignStatus == models.TaxiAssigned
		},
		Apply: withStatus(models.BookingStatusInProgress),
	},
	Transition{
		Action: ActionComplete,
		Label:  "Complete Trip",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusInProgress
		},
		Apply: withStatus(models.BookingStatusCompleted),
	},
	Transition{
		Action: ActionCancel,
		Label:  "Cancel Booking",
		Guard: func(s State) bool {
			return statusIn(s, models.BookingStatusPaid, models.BookingStatusInProgress)
		},
		Apply: withStatus(models.BookingStatusCancelled),
	},
)

// B2B is the corporate booking state machine:
// CONFIRMED -> (assignment) -> IN_PROGRESS -> COMPLETED, CANCELLED from CONFIRMED or IN_PROGRESS,
// and a financial resolution on completed trips that only moves payment_status.
var B2B = NewTable("b2b",
	Transition{
		Action: ActionAssign,
		Label:  "Assign / Update Driver",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusConfirmed
		},
		Apply: assigned,
	},
	Transition{
		Action: ActionStart,
		Label:  "Start Trip",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusConfirmed && s.HasAssignment
		},
		Apply: withStatus(models.BookingStatusInProgress),
	},
	Transition{
		Action: ActionComplete,
		Label:  "Complete Trip",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusInProgress
		},
		Apply: withStatus(models.BookingStatusCompleted),
	},
	Transition{
		Action: ActionCancel,
		Label:  "Cancel Booking",
		Guard: func(s State) bool {
			return statusIn(s, models.BookingStatusConfirmed, models.BookingStatusInProgress)
		},
		Apply: withStatus(models.BookingStatusCancelled),
	},
	Transition{
		Action: ActionRecordPayment,
		Label:  "Financial Resolution",
		Guard: func(s State) bool {
			return s.Status == models.BookingStatusCompleted && s.PaymentStatus != models.PaymentStatusPaid
		},
		Apply: func(s State) State {
			s.PaymentStatus = models.PaymentStatusPaid
			return s
		},
	},
)

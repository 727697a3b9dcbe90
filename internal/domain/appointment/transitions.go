package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ===============================
// Actors and actions
// ===============================

type Role string

const (
	RoleBarber   Role = models.RoleBarber
	RoleCustomer Role = models.RoleCustomer
)

// Actor is the authenticated party requesting a transition.
type Actor struct {
	ID   string
	Role Role
}

type Action string

const (
	ActionCheckIn           Action = "check_in"
	ActionConfirmCheckIn    Action = "confirm_check_in"
	ActionMarkDone          Action = "mark_done"
	ActionConfirmCompletion Action = "confirm_completion"
	ActionMarkNoShow        Action = "mark_no_show"
	ActionCancel            Action = "cancel"
)

func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionCheckIn, ActionConfirmCheckIn, ActionMarkDone,
		ActionConfirmCompletion, ActionMarkNoShow, ActionCancel:
		return a, true
	}
	return "", false
}

// ===============================
// Timestamp patch
// ===============================

type Stamp string

const (
	StampCustomerCheckedIn        Stamp = "customer_checked_in_at"
	StampBarberCheckedIn          Stamp = "barber_checked_in_at"
	StampServiceActuallyStarted   Stamp = "service_actually_started_at"
	StampCustomerMarkedDone       Stamp = "customer_marked_done_at"
	StampBarberMarkedDone         Stamp = "barber_marked_done_at"
	StampServiceActuallyCompleted Stamp = "service_actually_completed_at"
	StampNoShowMarked             Stamp = "no_show_marked_at"
)

func (s Stamp) field(ap *models.Appointment) *models.OnceTime {
	switch s {
	case StampCustomerCheckedIn:
		return &ap.CustomerCheckedInAt
	case StampBarberCheckedIn:
		return &ap.BarberCheckedInAt
	case StampServiceActuallyStarted:
		return &ap.ServiceActuallyStartedAt
	case StampCustomerMarkedDone:
		return &ap.CustomerMarkedDoneAt
	case StampBarberMarkedDone:
		return &ap.BarberMarkedDoneAt
	case StampServiceActuallyCompleted:
		return &ap.ServiceActuallyCompletedAt
	case StampNoShowMarked:
		return &ap.NoShowMarkedAt
	}
	return nil
}

// Decision is the outcome of a legal transition. The storage layer applies
// it with Apply and persists the result.
type Decision struct {
	From   Status
	To     Status
	At     time.Time
	Stamps []Stamp
}

// ===============================
// Transition table
// ===============================

type transitionKey struct {
	from   Status
	action Action
	role   Role
}

type guard func(ap *models.Appointment, now time.Time, p Policy) error

type rule struct {
	to     Status
	stamps []Stamp
	guard  guard
}

// checkpoint is a point both parties must acknowledge. The first party
// moves the appointment into its pending status; the second, with either
// verb, completes the joint transition.
type checkpoint struct {
	from    Status
	joined  Status
	initial Action
	confirm Action

	customerPending Status
	barberPending   Status

	customerStamp Stamp
	barberStamp   Stamp
	jointStamp    Stamp
}

func (c checkpoint) register(t map[transitionKey]rule) {
	t[transitionKey{c.from, c.initial, RoleCustomer}] = rule{to: c.customerPending, stamps: []Stamp{c.customerStamp}}
	t[transitionKey{c.from, c.initial, RoleBarber}] = rule{to: c.barberPending, stamps: []Stamp{c.barberStamp}}

	for _, verb := range []Action{c.initial, c.confirm} {
		t[transitionKey{c.customerPending, verb, RoleBarber}] = rule{
			to:     c.joined,
			stamps: []Stamp{c.barberStamp, c.jointStamp},
		}
		t[transitionKey{c.barberPending, verb, RoleCustomer}] = rule{
			to:     c.joined,
			stamps: []Stamp{c.customerStamp, c.jointStamp},
		}
	}
}

var (
	arrival = checkpoint{
		from:            StatusUpcoming,
		joined:          StatusInProgress,
		initial:         ActionCheckIn,
		confirm:         ActionConfirmCheckIn,
		customerPending: StatusCustomerInitiatedCheckIn,
		barberPending:   StatusBarberInitiatedCheckIn,
		customerStamp:   StampCustomerCheckedIn,
		barberStamp:     StampBarberCheckedIn,
		jointStamp:      StampServiceActuallyStarted,
	}

	completion = checkpoint{
		from:            StatusInProgress,
		joined:          StatusCompleted,
		initial:         ActionMarkDone,
		confirm:         ActionConfirmCompletion,
		customerPending: StatusCustomerInitiatedCompletion,
		barberPending:   StatusBarberInitiatedCompletion,
		customerStamp:   StampCustomerMarkedDone,
		barberStamp:     StampBarberMarkedDone,
		jointStamp:      StampServiceActuallyCompleted,
	}
)

var (
	bookedTable = buildBookedTable()
	walkInTable = buildWalkInTable()
)

func buildBookedTable() map[transitionKey]rule {
	t := map[transitionKey]rule{}

	arrival.register(t)
	completion.register(t)

	for _, from := range []Status{StatusUpcoming, StatusCustomerInitiatedCheckIn} {
		t[transitionKey{from, ActionMarkNoShow, RoleBarber}] = rule{
			to:     StatusNoShow,
			stamps: []Stamp{StampNoShowMarked},
			guard:  noShowGuard,
		}
	}

	for _, from := range []Status{StatusUpcoming, StatusCustomerInitiatedCheckIn, StatusBarberInitiatedCheckIn} {
		for _, role := range []Role{RoleBarber, RoleCustomer} {
			t[transitionKey{from, ActionCancel, role}] = rule{to: StatusCancelled, guard: cancelGuard}
		}
	}

	return t
}

// Walk-ins have no customer party: only the barber closes them.
func buildWalkInTable() map[transitionKey]rule {
	finish := rule{
		to:     StatusCompleted,
		stamps: []Stamp{StampBarberMarkedDone, StampServiceActuallyCompleted},
	}
	return map[transitionKey]rule{
		{StatusInProgress, ActionMarkDone, RoleBarber}:          finish,
		{StatusInProgress, ActionConfirmCompletion, RoleBarber}: finish,
	}
}

func noShowGuard(ap *models.Appointment, now time.Time, p Policy) error {
	if !now.After(ap.AppointmentTimestamp.Add(p.NoShowGrace)) {
		return ErrNoShowTooEarly
	}
	return nil
}

func cancelGuard(ap *models.Appointment, now time.Time, p Policy) error {
	if ap.AppointmentTimestamp.Sub(now) < p.CancellationLeadTime {
		return ErrCancellationTooLate
	}
	return nil
}

// ===============================
// Decide / Apply
// ===============================

// Decide looks up the transition for (status, action, role) and runs its
// guard. It never mutates ap.
func Decide(ap *models.Appointment, role Role, action Action, now time.Time, p Policy) (Decision, error) {
	from := Status(ap.Status)

	table := bookedTable
	if ap.IsWalkIn() {
		table = walkInTable
	}

	r, ok := table[transitionKey{from: from, action: action, role: role}]
	if !ok {
		return Decision{}, ErrInvalidTransition
	}

	if r.guard != nil {
		if err := r.guard(ap, now, p); err != nil {
			return Decision{}, err
		}
	}

	return Decision{From: from, To: r.to, At: now, Stamps: r.stamps}, nil
}

// Apply writes d onto ap. Timestamp fields already set keep their value.
func Apply(ap *models.Appointment, d Decision) {
	for _, s := range d.Stamps {
		if f := s.field(ap); f != nil {
			f.Fill(d.At)
		}
	}
	ap.Status = string(d.To)
	ap.UpdatedAt = d.At
}

// Authorize checks that actor is the barber or the customer of ap in the
// role it claims.
func Authorize(ap *models.Appointment, actor Actor) error {
	switch actor.Role {
	case RoleBarber:
		if actor.ID == ap.BarberID {
			return nil
		}
	case RoleCustomer:
		if ap.CustomerID != nil && *ap.CustomerID == actor.ID {
			return nil
		}
	}
	return ErrNotAParty
}

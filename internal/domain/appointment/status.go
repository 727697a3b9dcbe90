package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusUpcoming                    Status = "upcoming"
	StatusCustomerInitiatedCheckIn    Status = "customer-initiated-check-in"
	StatusBarberInitiatedCheckIn      Status = "barber-initiated-check-in"
	StatusInProgress                  Status = "in-progress"
	StatusCustomerInitiatedCompletion Status = "customer-initiated-completion"
	StatusBarberInitiatedCompletion   Status = "barber-initiated-completion"
	StatusCompleted                   Status = "completed"
	StatusNoShow                      Status = "no-show"
	StatusCancelled                   Status = "cancelled"
)

var allStatuses = []Status{
	StatusUpcoming,
	StatusCustomerInitiatedCheckIn,
	StatusBarberInitiatedCheckIn,
	StatusInProgress,
	StatusCustomerInitiatedCompletion,
	StatusBarberInitiatedCompletion,
	StatusCompleted,
	StatusNoShow,
	StatusCancelled,
}

func ParseStatus(s string) (Status, bool) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsTerminal reports whether no further transition can leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusNoShow || s == StatusCancelled
}

// BlocksSlot reports whether an appointment in this status occupies its
// interval for booking purposes. Only cancellation frees a slot.
func (s Status) BlocksSlot() bool {
	return s != StatusCancelled
}

// QueueStatuses are the statuses that still wait for, or receive, service today.
var QueueStatuses = []Status{
	StatusUpcoming,
	StatusCustomerInitiatedCheckIn,
	StatusBarberInitiatedCheckIn,
	StatusInProgress,
}

func (s Status) InQueue() bool {
	for _, q := range QueueStatuses {
		if s == q {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusUpcoming
}

func WalkInStatus() Status {
	return StatusInProgress
}

func statusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// QueueStatusStrings is QueueStatuses in storage form.
func QueueStatusStrings() []string {
	return statusStrings(QueueStatuses)
}

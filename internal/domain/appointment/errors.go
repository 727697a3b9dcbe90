package appointment

import (
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

// ===============================
// Core error kinds
// ===============================

var (
	ErrMalformedTimeLabel = httperr.ErrBusiness("malformed_time_label")

	ErrBarberClosed    = httperr.ErrBusiness("barber_closed")
	ErrDateUnavailable = httperr.ErrBusiness("date_unavailable")
	ErrNoSlotAvailable = httperr.ErrBusiness("no_slot_available")

	ErrDailyLimitExceeded  = httperr.ErrBusiness("daily_limit_exceeded")
	ErrWeeklyLimitExceeded = httperr.ErrBusiness("weekly_limit_exceeded")

	ErrInvalidTransition   = httperr.ErrBusiness("invalid_transition")
	ErrCancellationTooLate = httperr.ErrBusiness("cancellation_too_late")
	ErrNoShowTooEarly      = httperr.ErrBusiness("no_show_too_early")
	ErrNotAParty           = httperr.ErrBusiness("not_a_party")

	ErrSlotNotOffered       = httperr.ErrBusiness("slot_not_offered")
	ErrSlotTaken            = httperr.ErrBusiness("slot_taken")
	ErrNotAcceptingBookings = httperr.ErrBusiness("not_accepting_bookings")
	ErrInvalidSchedule      = httperr.ErrBusiness("invalid_schedule")
	ErrInvalidDate          = httperr.ErrBusiness("invalid_date")
	ErrInvalidDuration      = httperr.ErrBusiness("invalid_duration")

	ErrAppointmentNotFound     = httperr.ErrBusiness("appointment_not_found")
	ErrServiceNotFound         = httperr.ErrBusiness("service_not_found")
	ErrBarberNotFound          = httperr.ErrBusiness("barber_not_found")
	ErrUnavailableDateNotFound = httperr.ErrBusiness("unavailable_date_not_found")
	ErrUserNotFound            = httperr.ErrBusiness("user_not_found")

	// ErrNotFound is returned by repositories for a missing document.
	ErrNotFound = errors.New("not found")

	ErrStorageFailure = errors.New("storage failure")
)

// StorageError wraps an opaque persistence failure. It matches
// ErrStorageFailure with errors.Is and unwraps to the driver error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

// Storage wraps err as a StorageError unless it is nil or already one of
// the core's own kinds.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var be httperr.BusinessError
	if errors.As(err, &be) || errors.Is(err, ErrStorageFailure) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

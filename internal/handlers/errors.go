package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

type errorKind struct {
	err     error
	status  int
	message string
}

var errorKinds = []errorKind{
	{domain.ErrMalformedTimeLabel, http.StatusBadRequest, "Time must look like 09:30 AM."},
	{domain.ErrInvalidDate, http.StatusBadRequest, "Date is invalid or already over."},
	{domain.ErrInvalidDuration, http.StatusBadRequest, "Service duration does not fit the day."},
	{domain.ErrInvalidSchedule, http.StatusBadRequest, "Weekly schedule is invalid."},

	{domain.ErrNotAParty, http.StatusForbidden, "Only the barber or the customer of this appointment may act on it."},

	{domain.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found."},
	{domain.ErrServiceNotFound, http.StatusNotFound, "Service not found."},
	{domain.ErrBarberNotFound, http.StatusNotFound, "Barber not found."},
	{domain.ErrUserNotFound, http.StatusNotFound, "Profile not found."},
	{domain.ErrUnavailableDateNotFound, http.StatusNotFound, "Date is not blocked."},

	{domain.ErrSlotTaken, http.StatusConflict, "That slot was just taken."},
	{domain.ErrSlotNotOffered, http.StatusConflict, "That slot is not available."},
	{domain.ErrInvalidTransition, http.StatusConflict, "Action not allowed in the current status."},

	{domain.ErrBarberClosed, http.StatusUnprocessableEntity, "The barber is closed that day."},
	{domain.ErrDateUnavailable, http.StatusUnprocessableEntity, "The barber is unavailable that day."},
	{domain.ErrNoSlotAvailable, http.StatusUnprocessableEntity, "No free slot left today."},
	{domain.ErrNotAcceptingBookings, http.StatusUnprocessableEntity, "The barber is not taking online bookings."},
	{domain.ErrDailyLimitExceeded, http.StatusUnprocessableEntity, "Only one booking per day is allowed."},
	{domain.ErrWeeklyLimitExceeded, http.StatusUnprocessableEntity, "Weekly booking limit reached."},
	{domain.ErrCancellationTooLate, http.StatusUnprocessableEntity, "Too late to cancel this appointment."},
	{domain.ErrNoShowTooEarly, http.StatusUnprocessableEntity, "The grace period has not passed yet."},
}

// writeError maps a use case error to its HTTP response. Anything not
// recognised is an internal error.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		for _, k := range errorKinds {
			if errors.Is(err, k.err) {
				httperr.Write(c, k.status, be.Code, k.message)
				return
			}
		}
	}

	if errors.Is(err, domain.ErrStorageFailure) {
		_ = c.Error(err)
		httperr.Internal(c, "storage_failure", "Could not reach storage, try again.")
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Unexpected error.")
}

func badRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}

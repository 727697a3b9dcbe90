package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

type BarberHandler struct {
	availability *ucAppointment.BarberAvailability
}

func NewBarberHandler(availability *ucAppointment.BarberAvailability) *BarberHandler {
	return &BarberHandler{availability: availability}
}

type AvailabilityFlagsRequest struct {
	AcceptingBookings      *bool `json:"accepting_bookings"`
	TemporarilyUnavailable *bool `json:"temporarily_unavailable"`
}

// UpdateAvailability patches the barber flags. The shift result is only
// present when the call ended a temporary absence.
func (h *BarberHandler) UpdateAvailability(c *gin.Context) {
	var req AvailabilityFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.AcceptingBookings == nil && req.TemporarilyUnavailable == nil {
		httperr.BadRequest(c, "empty_patch", "Nothing to update.")
		return
	}

	ctx := c.Request.Context()
	var (
		user  *models.User
		shift *domain.ShiftResult
		err   error
	)

	if req.AcceptingBookings != nil {
		if user, err = h.availability.SetAcceptingBookings(ctx, userID(c), *req.AcceptingBookings); err != nil {
			writeError(c, err)
			return
		}
	}
	if req.TemporarilyUnavailable != nil {
		if user, shift, err = h.availability.SetTemporarilyUnavailable(ctx, userID(c), *req.TemporarilyUnavailable); err != nil {
			writeError(c, err)
			return
		}
	}

	httpresp.OK(c, gin.H{
		"is_accepting_bookings":      user.IsAcceptingBookings,
		"is_temporarily_unavailable": user.IsTemporarilyUnavailable,
		"unavailable_since":          user.UnavailableSince,
		"shift":                      shift,
	})
}

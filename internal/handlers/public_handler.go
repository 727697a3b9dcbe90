package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

// PublicHandler serves what a customer needs before booking. No token is
// required.
type PublicHandler struct {
	availability *ucAppointment.GetAvailability
	services     *ucAppointment.ManageServices
}

func NewPublicHandler(
	availability *ucAppointment.GetAvailability,
	services *ucAppointment.ManageServices,
) *PublicHandler {
	return &PublicHandler{availability: availability, services: services}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	all, err := h.services.List(c.Request.Context(), c.Param("barberId"))
	if err != nil {
		writeError(c, err)
		return
	}

	active := make([]models.BarberService, 0, len(all))
	for _, s := range all {
		if s.Active {
			active = append(active, s)
		}
	}
	httpresp.List(c, active)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	serviceID := c.Query("service_id")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "service_id and date are required.")
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), ucAppointment.GetAvailabilityInput{
		BarberID:  c.Param("barberId"),
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, res)
}

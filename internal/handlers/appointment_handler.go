package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	walkIn     *ucAppointment.CreateWalkIn
	transition *ucAppointment.TransitionAppointment
	byDate     *ucAppointment.ListAppointmentsByDate
	byMonth    *ucAppointment.ListAppointmentsByMonth
	byCustomer *ucAppointment.ListCustomerAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	walkIn *ucAppointment.CreateWalkIn,
	transition *ucAppointment.TransitionAppointment,
	byDate *ucAppointment.ListAppointmentsByDate,
	byMonth *ucAppointment.ListAppointmentsByMonth,
	byCustomer *ucAppointment.ListCustomerAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		walkIn:     walkIn,
		transition: transition,
		byDate:     byDate,
		byMonth:    byMonth,
		byCustomer: byCustomer,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	BarberID     string `json:"barber_id" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required,isodate"`
	StartTime    string `json:"start_time" binding:"required,timelabel"`
	CustomerName string `json:"customer_name"`
}

type WalkInRequest struct {
	ServiceID    string `json:"service_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	name := req.CustomerName
	if name == "" {
		name = c.GetString(middleware.ContextUserName)
	}

	res, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		CustomerID:   userID(c),
		CustomerName: name,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		StartTime:    req.StartTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.BookingDTO{
		Appointment: dto.NewAppointmentDTO(res.Appointment, false),
		Queue:       res.Queue,
	})
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_range", "from and to are required.")
		return
	}

	list, err := h.byCustomer.Execute(c.Request.Context(), userID(c), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// BOTH PARTIES
// ======================================================

func (h *AppointmentHandler) Act(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	action, ok := domain.ParseAction(req.Action)
	if !ok {
		httperr.BadRequest(c, "unknown_action", "Unknown action.")
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), ucAppointment.TransitionInput{
		AppointmentID: c.Param("id"),
		Actor:         actorFrom(c),
		Action:        action,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, false))
}

// ======================================================
// BARBER
// ======================================================

func (h *AppointmentHandler) WalkIn(c *gin.Context) {
	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ap, err := h.walkIn.Execute(c.Request.Context(), ucAppointment.CreateWalkInInput{
		BarberID:     userID(c),
		ServiceID:    req.ServiceID,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap, false))
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	list, err := h.byDate.Execute(c.Request.Context(), userID(c), date)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.BadRequest(c, "invalid_month", "year and month must be numbers.")
		return
	}

	var statuses []string
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			st, ok := domain.ParseStatus(strings.TrimSpace(s))
			if !ok {
				httperr.BadRequest(c, "invalid_status", "Unknown status "+s+".")
				return
			}
			statuses = append(statuses, string(st))
		}
	}

	list, err := h.byMonth.Execute(c.Request.Context(), userID(c), year, month, statuses)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

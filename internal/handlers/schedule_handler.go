package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

type ScheduleHandler struct {
	schedule *ucAppointment.ManageSchedule
}

func NewScheduleHandler(schedule *ucAppointment.ManageSchedule) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// --------- Requests ---------

type DayRequest struct {
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time" binding:"omitempty,timelabel"`
	EndTime   string `json:"end_time" binding:"omitempty,timelabel"`
}

type ScheduleRequest struct {
	Days []DayRequest `json:"days" binding:"required,max=7,dive"`
}

type UnavailableDateRequest struct {
	Date   string  `json:"date" binding:"required,isodate"`
	Reason *string `json:"reason"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Get(c *gin.Context) {
	days, err := h.schedule.Get(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"days": days})
}

func (h *ScheduleHandler) Replace(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	days := make([]models.DayAvailability, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, models.DayAvailability{
			Weekday:   *d.Weekday,
			IsOpen:    d.IsOpen,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	saved, err := h.schedule.Replace(c.Request.Context(), userID(c), days)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"days": saved})
}

func (h *ScheduleHandler) ListUnavailable(c *gin.Context) {
	list, err := h.schedule.ListUnavailable(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ScheduleHandler) AddUnavailable(c *gin.Context) {
	var req UnavailableDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	d, err := h.schedule.AddUnavailable(c.Request.Context(), userID(c), req.Date, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *ScheduleHandler) RemoveUnavailable(c *gin.Context) {
	if err := h.schedule.RemoveUnavailable(c.Request.Context(), userID(c), c.Param("date")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

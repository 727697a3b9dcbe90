package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	audit *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{audit: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	q := audit.Query{
		BarberID: userID(c),
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		Page:     page,
		Limit:    limit,
	}

	// --------------------------------------------------
	// Optional date filters
	// --------------------------------------------------
	if from, err := time.Parse(timezone.DateLayout, c.Query("from")); err == nil {
		q.From = &from
	}
	if to, err := time.Parse(timezone.DateLayout, c.Query("to")); err == nil {
		q.To = &to
	}

	q.Normalize()
	logs, total, err := h.audit.List(c.Request.Context(), q)
	if errors.Is(err, audit.ErrDisabled) {
		httperr.NotFound(c, "audit_disabled", "Audit log is not stored in this deployment.")
		return
	}
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.OK(c, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}

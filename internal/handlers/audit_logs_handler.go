package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
	loc    *time.Location
}

func NewAuditLogsHandler(logger *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	// --------------------------------------------------
	// Optional salon-local date range, both ends inclusive
	// --------------------------------------------------
	if from := c.Query("from"); from != "" {
		day, err := timezone.ParseDate(from, h.loc)
		if err != nil {
			httperr.Business(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		f.From = day
	}
	if to := c.Query("to"); to != "" {
		day, err := timezone.ParseDate(to, h.loc)
		if err != nil {
			httperr.Business(c, httperr.ErrBusiness("invalid_date"))
			return
		}
		_, f.To = timezone.DayBounds(day, h.loc)
	}

	logs, total, err := h.logger.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.Page(c, f.Page, f.Limit, total, logs)
}

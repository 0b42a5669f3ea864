package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/export"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminBookingHandler struct {
	listByDate   *ucBooking.ListBookingsByDate
	updateStatus *ucBooking.UpdateBookingStatus
}

func NewAdminBookingHandler(
	listByDate *ucBooking.ListBookingsByDate,
	updateStatus *ucBooking.UpdateBookingStatus,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listByDate:   listByDate,
		updateStatus: updateStatus,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	items, err := h.listByDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.From(c, err, "failed_to_list_bookings")
		return
	}
	httpresp.Items(c, items)
}

// ======================================================
// EXPORT
// ======================================================

func (h *AdminBookingHandler) Export(c *gin.Context) {
	date := c.Query("date")

	items, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.From(c, err, "failed_to_list_bookings")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDaySchedule(&buf, date, items); err != nil {
		httperr.From(c, err, "export_failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="bookings-%s.xlsx"`, date))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ======================================================
// STATUS
// ======================================================

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Business(c, httperr.ErrBusiness(bindingCode(err, nil, "invalid_status")))
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.From(c, err, "failed_to_update_booking")
		return
	}

	httpresp.Done(c, gin.H{"id": b.ID, "status": b.Status})
}

package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	ucSchedule "github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
)

type WorkingHoursHandler struct {
	schedule *ucSchedule.WorkingHours
}

func NewWorkingHoursHandler(schedule *ucSchedule.WorkingHours) *WorkingHoursHandler {
	return &WorkingHoursHandler{schedule: schedule}
}

type WorkingDayConfig struct {
	Weekday  int    `json:"weekday" binding:"min=0,max=6"`
	Open     string `json:"open" binding:"hhmm"`
	Close    string `json:"close" binding:"hhmm"`
	IsClosed bool   `json:"is_closed"`
}

// WorkingHoursUpdateRequest also accepts a bare JSON array of days.
type WorkingHoursUpdateRequest struct {
	Items []WorkingDayConfig `json:"items" binding:"dive"`
}

func (r *WorkingHoursUpdateRequest) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Items)
	}

	type plain WorkingHoursUpdateRequest
	return json.Unmarshal(data, (*plain)(r))
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	week, err := h.schedule.Get(c.Request.Context())
	if err != nil {
		httperr.From(c, err, "failed_to_get_working_hours")
		return
	}
	httpresp.Items(c, week)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Business(c, httperr.ErrBusiness(bindingCode(err, nil, "invalid_working_hours")))
		return
	}
	if len(req.Items) == 0 {
		httperr.Business(c, httperr.ErrBusiness("invalid_working_hours"))
		return
	}

	rows := make([]models.WorkingHours, 0, len(req.Items))
	for _, d := range req.Items {
		rows = append(rows, models.WorkingHours{
			Weekday:  d.Weekday,
			Open:     d.Open,
			Close:    d.Close,
			IsClosed: d.IsClosed,
		})
	}

	week, err := h.schedule.Save(c.Request.Context(), rows)
	if err != nil {
		httperr.From(c, err, "failed_to_save_working_hours")
		return
	}
	httpresp.Items(c, week)
}

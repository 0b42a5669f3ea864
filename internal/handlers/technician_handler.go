package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucTechnician "github.com/BruksfildServices01/salon-booking/internal/usecase/technician"
)

type TechnicianHandler struct {
	manage *ucTechnician.Manage
}

func NewTechnicianHandler(manage *ucTechnician.Manage) *TechnicianHandler {
	return &TechnicianHandler{manage: manage}
}

type CreateTechnicianRequest struct {
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
}

type UpdateTechnicianRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

func (h *TechnicianHandler) List(c *gin.Context) {
	techs, err := h.manage.ListAll(c.Request.Context())
	if err != nil {
		httperr.From(c, err, "failed_to_list_technicians")
		return
	}
	httpresp.Items(c, techs)
}

func (h *TechnicianHandler) Create(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Business(c, httperr.ErrBusiness("invalid_request"))
		return
	}

	t, err := h.manage.Create(c.Request.Context(), ucTechnician.CreateInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.From(c, err, "failed_to_create_technician")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": t})
}

func (h *TechnicianHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Business(c, httperr.ErrBusiness("invalid_request"))
		return
	}

	t, err := h.manage.Update(c.Request.Context(), id, ucTechnician.UpdateInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		httperr.From(c, err, "failed_to_update_technician")
		return
	}

	httpresp.Done(c, gin.H{"item": t})
}

func (h *TechnicianHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deactivated, err := h.manage.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err, "failed_to_delete_technician")
		return
	}

	httpresp.Done(c, gin.H{"deactivated": deactivated})
}

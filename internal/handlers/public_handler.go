package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucTechnician "github.com/BruksfildServices01/salon-booking/internal/usecase/technician"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	listServices         *ucBooking.ListServices
	getAvailability      *ucBooking.GetAvailability
	availableTechnicians *ucBooking.AvailableTechnicians
	createBooking        *ucBooking.CreateBooking
	getBooking           *ucBooking.GetBooking
	technicians          *ucTechnician.Manage
}

func NewPublicHandler(
	listServices *ucBooking.ListServices,
	getAvailability *ucBooking.GetAvailability,
	availableTechnicians *ucBooking.AvailableTechnicians,
	createBooking *ucBooking.CreateBooking,
	getBooking *ucBooking.GetBooking,
	technicians *ucTechnician.Manage,
) *PublicHandler {
	return &PublicHandler{
		listServices:         listServices,
		getAvailability:      getAvailability,
		availableTechnicians: availableTechnicians,
		createBooking:        createBooking,
		getBooking:           getBooking,
		technicians:          technicians,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateBookingRequest struct {
	ServiceID    string `json:"service_id" binding:"required"`
	StartAt      string `json:"start_at" binding:"required"`
	TechnicianID string `json:"technician_id"`
	Customer     struct {
		FullName string `json:"full_name" binding:"required"`
		Phone    string `json:"phone" binding:"required,phone"`
	} `json:"customer"`
}

type AvailableTechniciansRequest struct {
	StartAt string `json:"start_at"`
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err, "failed_to_list_services")
		return
	}
	httpresp.Items(c, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	technicianID, err := optionalUUID(c.Query("technician_id"))
	if err != nil {
		httperr.Business(c, err)
		return
	}
	serviceID, err := optionalUUID(c.Query("service_id"))
	if err != nil {
		httperr.Business(c, err)
		return
	}

	out, err := h.getAvailability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Date:         c.Query("date"),
		TechnicianID: technicianID,
		ServiceID:    serviceID,
	})
	if err != nil {
		httperr.From(c, err, "availability_failed")
		return
	}

	c.Header("Cache-Control", "no-store")
	httpresp.OK(c, out)
}

// ======================================================
// TECHNICIANS
// ======================================================

func (h *PublicHandler) ListTechnicians(c *gin.Context) {
	techs, err := h.technicians.ListPublic(c.Request.Context())
	if err != nil {
		httperr.From(c, err, "failed_to_list_technicians")
		return
	}
	httpresp.Items(c, techs)
}

func (h *PublicHandler) AvailableTechnicians(c *gin.Context) {
	var req AvailableTechniciansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Business(c, httperr.ErrBusiness("invalid_request"))
		return
	}

	techs, err := h.availableTechnicians.Execute(c.Request.Context(), req.StartAt)
	if err != nil {
		httperr.From(c, err, "failed_to_list_technicians")
		return
	}
	httpresp.Items(c, techs)
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		code := bindingCode(err, map[string]string{"phone": "invalid_phone"}, "missing_fields")
		httperr.Business(c, httperr.ErrBusiness(code))
		return
	}

	serviceID, err := optionalUUID(req.ServiceID)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	if serviceID == nil {
		httperr.Business(c, httperr.ErrBusiness("missing_fields"))
		return
	}
	technicianID, err := optionalUUID(req.TechnicianID)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ServiceID:    *serviceID,
		TechnicianID: technicianID,
		StartAt:      req.StartAt,
		FullName:     req.Customer.FullName,
		Phone:        req.Customer.Phone,
	})
	if err != nil {
		httperr.From(c, err, "booking_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":         true,
		"booking_id": b.ID,
	})
}

func (h *PublicHandler) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	out, err := h.getBooking.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err, "failed_to_get_booking")
		return
	}
	httpresp.OK(c, out)
}

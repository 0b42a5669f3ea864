package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type mapping struct {
	status  int
	message string
}

var businessCodes = map[string]mapping{
	"invalid_request":       {http.StatusBadRequest, "Invalid request body."},
	"missing_fields":        {http.StatusBadRequest, "Missing fields: service_id, start_at, customer.full_name, customer.phone."},
	"missing_date":          {http.StatusBadRequest, "Missing ?date=YYYY-MM-DD."},
	"invalid_date":          {http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD."},
	"invalid_start_at":      {http.StatusBadRequest, "Invalid start_at."},
	"missing_start_at":      {http.StatusBadRequest, "Missing start_at."},
	"invalid_phone":         {http.StatusBadRequest, "Invalid phone number."},
	"invalid_id":            {http.StatusBadRequest, "Invalid id."},
	"start_in_past":         {http.StatusBadRequest, "That time has already passed."},
	"outside_working_hours": {http.StatusBadRequest, "The salon is closed at that time."},
	"invalid_working_hours": {http.StatusBadRequest, "Invalid working hours."},
	"invalid_status":        {http.StatusBadRequest, "Unknown booking status."},
	"invalid_transition":    {http.StatusBadRequest, "Booking cannot move to that status."},
	"missing_full_name":     {http.StatusBadRequest, "Missing full_name."},
	"service_not_found":     {http.StatusNotFound, "Service not found."},
	"technician_not_found":  {http.StatusNotFound, "Technician not found."},
	"booking_not_found":     {http.StatusNotFound, "Booking not found."},
	"hour_fully_booked":     {http.StatusConflict, "This hour is fully booked."},
	"technician_busy":       {http.StatusConflict, "Technician is busy at this time."},
	"duplicate_submission":  {http.StatusConflict, "This booking is already being processed."},
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Business writes err when it is a known BusinessError and reports
// whether it did. Anything else is left to the caller.
func Business(c *gin.Context, err error) bool {
	code, ok := Code(err)
	if !ok {
		return false
	}

	m, known := businessCodes[code]
	if !known {
		m = mapping{http.StatusBadRequest, code}
	}
	Write(c, m.status, code, m.message)
	return true
}

// From writes err as a business error, or as a 500 with fallbackCode.
func From(c *gin.Context, err error, fallbackCode string) {
	if Business(c, err) {
		return
	}
	_ = c.Error(err)
	Internal(c, fallbackCode, "Internal server error.")
}

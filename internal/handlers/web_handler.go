package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
	ucTechnician "github.com/BruksfildServices01/salon-booking/internal/usecase/technician"
)

// ======================================================
// HANDLER
// ======================================================

type WebHandler struct {
	listServices *ucBooking.ListServices
	getBooking   *ucBooking.GetBooking
	listByDate   *ucBooking.ListBookingsByDate
	technicians  *ucTechnician.Manage
	schedule     *ucSchedule.WorkingHours
	business     notify.Business
	loc          *time.Location
}

func NewWebHandler(
	listServices *ucBooking.ListServices,
	getBooking *ucBooking.GetBooking,
	listByDate *ucBooking.ListBookingsByDate,
	technicians *ucTechnician.Manage,
	schedule *ucSchedule.WorkingHours,
	business notify.Business,
	loc *time.Location,
) *WebHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &WebHandler{
		listServices: listServices,
		getBooking:   getBooking,
		listByDate:   listByDate,
		technicians:  technicians,
		schedule:     schedule,
		business:     business,
		loc:          loc,
	}
}

type serviceCategory struct {
	Name     string
	Services []models.Service
}

// groupByCategory keeps the repository order, which is already by category.
func groupByCategory(services []models.Service) []serviceCategory {
	var out []serviceCategory
	for _, s := range services {
		if n := len(out); n > 0 && out[n-1].Name == s.Category {
			out[n-1].Services = append(out[n-1].Services, s)
			continue
		}
		out = append(out, serviceCategory{Name: s.Category, Services: []models.Service{s}})
	}
	return out
}

func (h *WebHandler) render(c *gin.Context, status int, page, title string, data gin.H) {
	data["Page"] = page
	data["Title"] = title
	data["Business"] = h.business.Name
	data["BusinessPhone"] = h.business.Phone
	c.HTML(status, "base", data)
}

func (h *WebHandler) renderError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// ======================================================
// PUBLIC PAGES
// ======================================================

func (h *WebHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/book")
}

func (h *WebHandler) BookPage(c *gin.Context) {
	ctx := c.Request.Context()

	services, err := h.listServices.Execute(ctx)
	if err != nil {
		h.renderError(c)
		return
	}
	techs, err := h.technicians.ListPublic(ctx)
	if err != nil {
		h.renderError(c)
		return
	}

	h.render(c, http.StatusOK, "book", "Book", gin.H{
		"Categories":  groupByCategory(services),
		"Technicians": techs,
		"Today":       time.Now().In(h.loc).Format("2006-01-02"),
	})
}

// SuccessPage falls back to a generic message when the id is missing or unknown.
func (h *WebHandler) SuccessPage(c *gin.Context) {
	var detail *dto.BookingDetail
	if id, err := uuid.Parse(strings.TrimSpace(c.Query("id"))); err == nil {
		if out, err := h.getBooking.Execute(c.Request.Context(), id); err == nil {
			detail = out
		}
	}

	h.render(c, http.StatusOK, "success", "Booked", gin.H{
		"Booking": detail,
	})
}

// ======================================================
// ADMIN DASHBOARD
// ======================================================

func (h *WebHandler) AdminDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = time.Now().In(h.loc).Format("2006-01-02")
	}

	bookings, err := h.listByDate.Execute(ctx, date)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid date.")
		return
	}
	techs, err := h.technicians.ListAll(ctx)
	if err != nil {
		h.renderError(c)
		return
	}
	hours, err := h.schedule.Get(ctx)
	if err != nil {
		h.renderError(c)
		return
	}

	c.Header("Cache-Control", "no-store")
	h.render(c, http.StatusOK, "admin", "Admin", gin.H{
		"Date":        date,
		"Bookings":    bookings,
		"Technicians": techs,
		"Hours":       hours,
	})
}

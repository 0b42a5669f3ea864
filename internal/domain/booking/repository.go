package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Transactions --------
	WithinTx(ctx context.Context, fn func(repo Repository) error) error
	// LockDay blocks other writers of the same local day until the
	// transaction ends. Only meaningful inside WithinTx.
	LockDay(ctx context.Context, dayStart time.Time) error

	// -------- Services --------
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	UpsertServices(ctx context.Context, services []models.Service) error

	// -------- Technicians --------
	GetTechnician(ctx context.Context, id uuid.UUID) (*models.Technician, error)
	ListTechnicians(ctx context.Context, onlyActive bool) ([]models.Technician, error)
	CreateTechnician(ctx context.Context, t *models.Technician) error
	UpdateTechnician(ctx context.Context, t *models.Technician) error
	DeleteTechnician(ctx context.Context, id uuid.UUID) error
	CountBookingsForTechnician(ctx context.Context, id uuid.UUID) (int64, error)

	// -------- Working hours --------
	GetWorkingHours(ctx context.Context, weekday int) (*models.WorkingHours, error)
	ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, rows []models.WorkingHours) error

	// -------- Customers --------
	GetOrCreateCustomer(ctx context.Context, fullName, phone string) (*models.Customer, error)

	// -------- Bookings --------
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status) error
	// ListActiveBookingsBetween returns pending/confirmed bookings starting in [from,to).
	ListActiveBookingsBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	// ListBookingsBetween returns every booking starting in [from,to) with its relations.
	ListBookingsBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	ListRemindersDue(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// BookingGormRepository stores every salon entity. Timestamps go in and
// out as UTC so range filters compare correctly on sqlite as well.
type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(repo domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// LockDay serialises booking writers for the local day starting at
// dayStart until the surrounding transaction ends. Postgres takes a
// transaction-scoped advisory lock; sqlite already runs one writer at a
// time on its single connection.
func (r *BookingGormRepository) LockDay(ctx context.Context, dayStart time.Time) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", dayStart.Unix()).Error
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC").
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// UpsertServices matches rows on (category, name).
func (r *BookingGormRepository) UpsertServices(
	ctx context.Context,
	services []models.Service,
) error {
	if len(services) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"price_cents", "duration_min", "is_addon", "is_active", "updated_at"}),
		}).
		Create(&services).Error
}

// --------------------------------------------------
// Technicians
// --------------------------------------------------

func (r *BookingGormRepository) GetTechnician(
	ctx context.Context,
	id uuid.UUID,
) (*models.Technician, error) {

	var tech models.Technician
	if err := r.db.WithContext(ctx).First(&tech, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &tech, nil
}

// ListTechnicians orders active technicians first, then by name.
func (r *BookingGormRepository) ListTechnicians(
	ctx context.Context,
	onlyActive bool,
) ([]models.Technician, error) {

	q := r.db.WithContext(ctx)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var techs []models.Technician
	if err := q.
		Order("is_active DESC").
		Order("full_name ASC").
		Find(&techs).Error; err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *BookingGormRepository) CreateTechnician(ctx context.Context, t *models.Technician) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *BookingGormRepository) UpdateTechnician(ctx context.Context, t *models.Technician) error {
	return r.db.WithContext(ctx).
		Model(t).
		Select("full_name", "phone", "is_active", "updated_at").
		Updates(t).Error
}

func (r *BookingGormRepository) DeleteTechnician(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Technician{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) CountBookingsForTechnician(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("technician_id = ?", id).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

// GetWorkingHours returns nil without error when the weekday has no row.
func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).Where("weekday = ?", weekday).First(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *BookingGormRepository) ListWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).Order("weekday ASC").Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) UpsertWorkingHours(
	ctx context.Context,
	rows []models.WorkingHours,
) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time", "is_closed", "updated_at"}),
		}).
		Create(&rows).Error
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

// GetOrCreateCustomer looks the customer up by phone. An existing row
// keeps its name.
func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	fullName string,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{FullName: fullName, Phone: phone}
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.StartAt = b.StartAt.UTC()
	b.EndAt = b.EndAt.UTC()
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Preload("Technician").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) ListActiveBookingsBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "start_at", "end_at", "technician_id", "status").
		Where(
			"status IN ? AND start_at >= ? AND start_at < ?",
			domain.ActiveStatuses, from.UTC(), to.UTC(),
		).
		Order("start_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Preload("Technician").
		Where("start_at >= ? AND start_at < ?", from.UTC(), to.UTC()).
		Order("start_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListRemindersDue(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Where(
			"status = ? AND reminder_sent_at IS NULL AND start_at >= ? AND start_at < ?",
			string(domain.StatusConfirmed), from.UTC(), to.UTC(),
		).
		Order("start_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	id uuid.UUID,
	at time.Time,
) error {
	sentAt := at.UTC()
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("reminder_sent_at", &sentAt).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

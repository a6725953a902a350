package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("User", "Stylist", "Service").Create(b).Error
}

func (r *BookingGormRepository) withDisplay(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Stylist").
		Preload("Service")
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.withDisplay(ctx).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListRecentBookings(
	ctx context.Context,
	limit int,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.withDisplay(ctx).
		Order("date DESC, time DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	day domain.DayRange,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.withDisplay(ctx).
		Where("date >= ? AND date < ?", day.Start, day.End).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *BookingGormRepository) CountBookings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&n).Error
	return n, err
}

func (r *BookingGormRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func (r *BookingGormRepository) SumBookedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN services ON services.id = bookings.service_id").
		Select("COALESCE(SUM(services.price), 0)").
		Scan(&total).Error
	return total, err
}

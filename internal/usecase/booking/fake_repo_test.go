package booking

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domain "github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/models"
)

type memoryRepo struct {
	mu       sync.Mutex
	users    map[string]*models.User // by email
	bookings []models.Booking
	services map[string]models.Service

	createUserErr error
	err           error
}

func newMemoryRepo(services ...models.Service) *memoryRepo {
	r := &memoryRepo{
		users:    map[string]*models.User{},
		services: map[string]models.Service{},
	}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

var _ domain.Repository = (*memoryRepo)(nil)

func (r *memoryRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryRepo) CreateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createUserErr != nil {
		return r.createUserErr
	}
	u.ID = uuid.NewString()
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memoryRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	b.ID = uuid.NewString()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *memoryRepo) withService(b models.Booking) models.Booking {
	b.Service = r.services[b.ServiceID]
	for _, u := range r.users {
		if u.ID == b.UserID {
			b.User = *u
		}
	}
	return b
}

func (r *memoryRepo) ListBookings(context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, r.withService(b))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memoryRepo) ListRecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	all, _ := r.ListBookings(ctx)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memoryRepo) ListBookingsForDay(ctx context.Context, day domain.DayRange) ([]models.Booking, error) {
	all, _ := r.ListBookings(ctx)
	var out []models.Booking
	for _, b := range all {
		if !b.Date.Before(day.Start) && b.Date.Before(day.End) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepo) CountBookings(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), r.err
}

func (r *memoryRepo) CountUsers(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *memoryRepo) SumBookedRevenue(context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, b := range r.bookings {
		total += r.services[b.ServiceID].Price
	}
	return total, nil
}

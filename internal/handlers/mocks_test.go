package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/models"
	ucbooking "github.com/harramos25/GlamBook/internal/usecase/booking"
	uccatalog "github.com/harramos25/GlamBook/internal/usecase/catalog"
)

type MockCatalogLister struct{ mock.Mock }

func (m *MockCatalogLister) Services(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Service)
	return out, args.Error(1)
}

func (m *MockCatalogLister) Stylists(ctx context.Context) ([]models.Stylist, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Stylist)
	return out, args.Error(1)
}

type MockBookingCreator struct{ mock.Mock }

func (m *MockBookingCreator) Execute(ctx context.Context, in ucbooking.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Booking)
	return out, args.Error(1)
}

type MockBookingLister struct{ mock.Mock }

func (m *MockBookingLister) Execute(ctx context.Context) ([]dto.BookingListDTO, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.BookingListDTO)
	return out, args.Error(1)
}

type MockStatsProvider struct{ mock.Mock }

func (m *MockStatsProvider) Execute(ctx context.Context) (*dto.DashboardStats, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*dto.DashboardStats)
	return out, args.Error(1)
}

type MockUserFinder struct{ mock.Mock }

func (m *MockUserFinder) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*models.User)
	return out, args.Error(1)
}

type MockDayBookings struct{ mock.Mock }

func (m *MockDayBookings) Execute(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	out, _ := args.Get(0).([]models.Booking)
	return out, args.Error(1)
}

type MockAuditLogLister struct{ mock.Mock }

func (m *MockAuditLogLister) List(ctx context.Context, action string, page, limit int) ([]models.AuditLog, int64, error) {
	args := m.Called(ctx, action, page, limit)
	out, _ := args.Get(0).([]models.AuditLog)
	return out, args.Get(1).(int64), args.Error(2)
}

type MockCatalogManager struct{ mock.Mock }

func (m *MockCatalogManager) CreateService(ctx context.Context, in uccatalog.CreateServiceInput) (*models.Service, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Service)
	return out, args.Error(1)
}

func (m *MockCatalogManager) CreateStylist(ctx context.Context, in uccatalog.CreateStylistInput) (*models.Stylist, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Stylist)
	return out, args.Error(1)
}

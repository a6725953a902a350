package booking

import (
	"context"
	"fmt"

	domain "github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/dto"
)

const RecentBookingsLimit = 5

type DashboardStats struct {
	repo domain.Repository
}

func NewDashboardStats(repo domain.Repository) *DashboardStats {
	return &DashboardStats{repo: repo}
}

// Execute counts every booking toward revenue, whatever its status.
func (uc *DashboardStats) Execute(ctx context.Context) (*dto.DashboardStats, error) {
	totalBookings, err := uc.repo.CountBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	totalUsers, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	revenue, err := uc.repo.SumBookedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	recent, err := uc.repo.ListRecentBookings(ctx, RecentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}

	return &dto.DashboardStats{
		TotalRevenue:   revenue,
		TotalBookings:  totalBookings,
		TotalUsers:     totalUsers,
		AverageTicket:  AverageTicket(revenue, totalBookings),
		RecentBookings: dto.NewRecentBookings(recent),
	}, nil
}

func AverageTicket(revenue float64, bookings int64) float64 {
	if bookings == 0 {
		return 0
	}
	return revenue / float64(bookings)
}

package dto

type DashboardStats struct {
	TotalRevenue   float64            `json:"totalRevenue"`
	TotalBookings  int64              `json:"totalBookings"`
	TotalUsers     int64              `json:"totalUsers"`
	AverageTicket  float64            `json:"averageTicket"`
	RecentBookings []RecentBookingDTO `json:"recentBookings"`
}

package dto

import (
	bookingDto "autocare/internal/domains/booking/model/dto"
	"autocare/shared/constant"
)

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	TotalBookings      int                          `json:"totalBookings"`
	PendingBookings    int                          `json:"pendingBookings"`
	ConfirmedBookings  int                          `json:"confirmedBookings"`
	InProgressBookings int                          `json:"inProgressBookings"`
	CompletedBookings  int                          `json:"completedBookings"`
	CancelledBookings  int                          `json:"cancelledBookings"`
	TotalUsers         int                          `json:"totalUsers"`
	TotalServices      int                          `json:"totalServices"`
	ActiveServices     int                          `json:"activeServices"`
	TotalContacts      int                          `json:"totalContacts"`
	NewContacts        int                          `json:"newContacts"`
	MonthlyBookings    int                          `json:"monthlyBookings"`
	MonthlyContacts    int                          `json:"monthlyContacts"`
	RecentBookings     []bookingDto.BookingResponse `json:"recentBookings"`
}

type ComponentHealth struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type MemoryStats struct {
	AllocBytes uint64 `json:"allocBytes"`
	SysBytes   uint64 `json:"sysBytes"`
	NumGC      uint32 `json:"numGC"`
}

type HealthResponse struct {
	Status        string          `json:"status"`
	Database      ComponentHealth `json:"database"`
	Cache         ComponentHealth `json:"cache"`
	UptimeSeconds int64           `json:"uptimeSeconds"`
	Memory        MemoryStats     `json:"memory"`
	Goroutines    int             `json:"goroutines"`
}

func (h HealthResponse) Healthy() bool {
	return h.Status == constant.HealthStatusUp
}

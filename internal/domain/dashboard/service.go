package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard assembles the dashboard for identity. date selects the day for single-day
	// statistics (YYYY-MM-DD, defaults to today); the trend always ends today.
	GetDashboard(ctx context.Context, identity access.Identity, date string) (*DashboardResponse, error)
}

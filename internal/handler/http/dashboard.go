package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.GetDashboard(r.Context(), identity, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result.Messages = response.ConsumeFlash(w, r)
	response.Success(w, result)
}

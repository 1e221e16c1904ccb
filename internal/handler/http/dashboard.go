package http

import (
	"net/http"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/leave-approval-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/leave-approval-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns balances and counters of the signed-in user
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

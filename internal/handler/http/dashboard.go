package http

import (
	"net/http"

	"github.com/wagedesk/payroll-backend-go/internal/domain/dashboard"
	"github.com/wagedesk/payroll-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetComparison(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) GetComparison(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetComparison(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardUsecases "gymdesk/internal/application/dashboard/usecases"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type getOverviewUseCase interface {
	Execute(ctx context.Context) (*dashboardUsecases.OverviewDTO, error)
}

type DashboardHandler struct {
	getOverviewUC getOverviewUseCase
	logger        logger.Interface
}

func NewDashboardHandler(getOverviewUC getOverviewUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getOverviewUC: getOverviewUC,
		logger:        logger,
	}
}

// GetOverview returns the front-desk dashboard counters.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	result, err := h.getOverviewUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "")
}

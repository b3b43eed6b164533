package handler

import (
	"github.com/zungle102/shiftrec-sub000/internal/pkg/response"
	"github.com/zungle102/shiftrec-sub000/internal/service"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
}

func NewDashboardHandler(trace *telemetry.Trace, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{trace: trace, dashboardService: dashboardService}
}

// Summary 儀表板彙總
// @Summary 取得儀表板彙總數字
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardSummaryDto
// @Failure 500 {object} map[string]string
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.dashboardService.Summary(ctx, ownerEmail(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

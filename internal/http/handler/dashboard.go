package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"claritymeet.app/api-server/internal/http/dto"
	"claritymeet.app/api-server/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	clock            clockwork.Clock
}

func NewDashboardHandler(dashboardService service.DashboardService, clock clockwork.Clock) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, clock: clock}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard, h.clock.Now()))
}

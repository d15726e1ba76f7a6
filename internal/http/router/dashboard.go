package router

import (
	"claritymeet.app/api-server/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func DashboardRouter(rg *gin.RouterGroup, h *handler.DashboardHandler) {
	rg.GET("", h.Get)
}

package router

import (
	"claritymeet.app/api-server/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AgendaItemRouter(rg *gin.RouterGroup, h *handler.AgendaItemHandler) {
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

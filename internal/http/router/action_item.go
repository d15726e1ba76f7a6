package router

import (
	"claritymeet.app/api-server/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func ActionItemRouter(rg *gin.RouterGroup, h *handler.ActionItemHandler) {
	rg.PATCH("/:id/complete", h.Complete)
}

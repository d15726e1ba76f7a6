package router

import (
	"claritymeet.app/api-server/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func SuggestRouter(rg *gin.RouterGroup, h *handler.SuggestHandler) {
	rg.POST("/suggest-agenda", h.SuggestAgenda)
	rg.POST("/suggest-actions", h.SuggestActions)
	rg.POST("/summarize-review", h.SummarizeReview)
}

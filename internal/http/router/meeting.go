package router

import (
	"claritymeet.app/api-server/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func MeetingRouter(rg *gin.RouterGroup, h *handler.MeetingHandler, agenda *handler.AgendaItemHandler, actions *handler.ActionItemHandler, reviews *handler.ReviewHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id/start", h.Start)
	rg.PATCH("/:id/close", h.Close)

	rg.POST("/:id/agenda", agenda.Add)
	rg.POST("/:id/actions", actions.Create)
	rg.GET("/:id/actions", actions.ListByMeeting)
	rg.POST("/:id/review", reviews.Create)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claritymeet.app/api-server/internal/http/dto"
	"claritymeet.app/api-server/internal/service"
)

type AgendaItemHandler struct {
	agendaService service.AgendaService
}

func NewAgendaItemHandler(agendaService service.AgendaService) *AgendaItemHandler {
	return &AgendaItemHandler{agendaService: agendaService}
}

func (h *AgendaItemHandler) Add(c *gin.Context) {
	meetingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddAgendaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.agendaService.Add(c.Request.Context(), meetingID, req.Topic, req.TimeAllocation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAgendaItemResponse(item))
}

func (h *AgendaItemHandler) Update(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAgendaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.agendaService.Update(c.Request.Context(), itemID, req.TimeAllocation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAgendaItemResponse(item))
}

func (h *AgendaItemHandler) Delete(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.agendaService.Delete(c.Request.Context(), itemID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

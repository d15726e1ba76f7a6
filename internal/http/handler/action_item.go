package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"claritymeet.app/api-server/internal/http/dto"
	"claritymeet.app/api-server/internal/service"
)

type ActionItemHandler struct {
	actionService service.ActionItemService
	clock         clockwork.Clock
}

func NewActionItemHandler(actionService service.ActionItemService, clock clockwork.Clock) *ActionItemHandler {
	return &ActionItemHandler{actionService: actionService, clock: clock}
}

func (h *ActionItemHandler) Create(c *gin.Context) {
	meetingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := req.ParseDeadline()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline: expected YYYY-MM-DD"})
		return
	}

	item, err := h.actionService.Create(c.Request.Context(), meetingID, req.Description, req.Owner, deadline)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActionItemResponse(item, h.clock.Now()))
}

func (h *ActionItemHandler) Complete(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.actionService.Complete(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActionItemResponse(item, h.clock.Now()))
}

func (h *ActionItemHandler) ListByMeeting(c *gin.Context) {
	meetingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.actionService.ListByMeeting(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActionItemResponses(items, h.clock.Now()))
}

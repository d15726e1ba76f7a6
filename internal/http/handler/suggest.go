package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"claritymeet.app/api-server/internal/http/dto"
	"claritymeet.app/api-server/internal/suggest"
)

// SuggestHandler serves the advisory suggestion endpoints. The collaborator
// runs under a timeout; its failures degrade inside the suggest package and
// never surface as core taxonomy errors.
type SuggestHandler struct {
	suggester suggest.Service
	timeout   time.Duration
}

func NewSuggestHandler(suggester suggest.Service, timeout time.Duration) *SuggestHandler {
	return &SuggestHandler{suggester: suggester, timeout: timeout}
}

func (h *SuggestHandler) SuggestAgenda(c *gin.Context) {
	var req dto.SuggestAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.suggestContext(c)
	defer cancel()

	suggestions, err := h.suggester.SuggestAgenda(ctx, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse[suggest.AgendaSuggestion]{Suggestions: suggestions})
}

func (h *SuggestHandler) SuggestActions(c *gin.Context) {
	var req dto.SuggestActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.suggestContext(c)
	defer cancel()

	suggestions, err := h.suggester.SuggestActions(ctx, req.Title, req.AgendaTopics)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse[suggest.ActionSuggestion]{Suggestions: suggestions})
}

func (h *SuggestHandler) SummarizeReview(c *gin.Context) {
	var req dto.SummarizeReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.suggestContext(c)
	defer cancel()

	draft, err := h.suggester.SummarizeReview(ctx, req.Title, req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewDraftResponse(draft))
}

func (h *SuggestHandler) suggestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

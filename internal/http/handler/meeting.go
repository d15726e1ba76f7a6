package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"claritymeet.app/api-server/internal/http/dto"
	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/service"
)

type MeetingHandler struct {
	meetingService service.MeetingService
	clock          clockwork.Clock
}

func NewMeetingHandler(meetingService service.MeetingService, clock clockwork.Clock) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService, clock: clock}
}

func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetingService.Create(c.Request.Context(), req.Title, req.ScheduledTime, req.DurationMinutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeetingResponse(meeting, h.clock.Now()))
}

func (h *MeetingHandler) List(c *gin.Context) {
	var status *model.MeetingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := model.ParseMeetingStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = &parsed
	}

	meetings, err := h.meetingService.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponses(meetings, h.clock.Now()))
}

func (h *MeetingHandler) Get(c *gin.Context) {
	meetingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	meeting, err := h.meetingService.Get(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting, h.clock.Now()))
}

func (h *MeetingHandler) Start(c *gin.Context) {
	meetingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	meeting, err := h.meetingService.Start(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting, h.clock.Now()))
}

func (h *MeetingHandler) Close(c *gin.Context) {
	meetingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	meeting, err := h.meetingService.Close(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting, h.clock.Now()))
}

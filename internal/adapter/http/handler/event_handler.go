package handler

import (
	"strconv"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/adapter/http/dto"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"
	"github.com/asilbek-0311/arc-omnichan-yield/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the event log.
type EventHandler struct {
	events ports.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents handles GET /api/v1/events?limit=&kind=.
func (h *EventHandler) ListEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	events, err := h.events.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	kind := c.Query("kind")
	items := make([]dto.EventResponse, 0, len(events))
	for _, evt := range events {
		if kind != "" && string(evt.Kind) != kind {
			continue
		}
		items = append(items, dto.EventResponse{
			ID:        evt.ID.String(),
			Kind:      string(evt.Kind),
			Source:    evt.Source,
			Fields:    evt.Fields,
			CreatedAt: formatTime(evt.CreatedAt),
		})
	}
	response.OK(c, items)
}

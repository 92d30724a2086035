package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schedoosh/schedoosh/internal/api/models"
	"github.com/schedoosh/schedoosh/internal/database"
)

// ListMyEvents returns the authenticated user's events in weekly order.
func (h *Handler) ListMyEvents(c *gin.Context) {
	events, err := h.db.ListEventsForUser(c.Request.Context(), actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, models.ToEvents(events))
}

// CreateEvent creates a timed event owned by the authenticated user.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Missing numeric fields fall through as out-of-range so the store's
	// field-order validation produces the message.
	weekday, hour, minute := -1, -1, -1
	if req.Weekday != nil {
		weekday = *req.Weekday
	}
	if req.Hour != nil {
		hour = *req.Hour
	}
	if req.Minute != nil {
		minute = *req.Minute
	}

	event, err := h.db.CreateEvent(c.Request.Context(), actorID(c), strings.TrimSpace(req.Title), weekday, hour, minute)
	if err != nil {
		if errors.Is(err, database.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, models.ToEvent(event))
}

// DeleteEvent deletes one of the authenticated user's own events.
func (h *Handler) DeleteEvent(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := h.db.DeleteEvent(c.Request.Context(), eventID, actorID(c)); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, database.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListGroupEvents returns the events of all current members of a group.
// Members only.
func (h *Handler) ListGroupEvents(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	events, err := h.db.ListEventsForGroup(c.Request.Context(), groupID, actorID(c))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		case errors.Is(err, database.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden (not a member)"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, models.ToEvents(events))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schedoosh/schedoosh/internal/api/models"
	"github.com/schedoosh/schedoosh/internal/database"
)

// Me returns the authenticated user's own summary.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.db.GetUserByID(c.Request.Context(), actorID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, models.ToUserSummary(user))
}

// UpdateScore replaces the authenticated user's score.
func (h *Handler) UpdateScore(c *gin.Context) {
	var req models.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Score == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score is required"})
		return
	}

	user, err := h.db.UpdateUserScore(c.Request.Context(), actorID(c), *req.Score)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must not be negative"})
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, models.ToUserSummary(user))
}

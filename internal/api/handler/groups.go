package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schedoosh/schedoosh/internal/api/models"
	"github.com/schedoosh/schedoosh/internal/database"
)

// CreateGroup creates a group; the creator automatically becomes its first
// member.
func (h *Handler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		return
	}

	group, err := h.db.CreateGroup(c.Request.Context(), strings.TrimSpace(req.Name), actorID(c))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		case errors.Is(err, database.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Group name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, models.ToGroupSummary(*group))
}

// ListMyGroups returns the groups the authenticated user belongs to.
func (h *Handler) ListMyGroups(c *gin.Context) {
	groups, err := h.db.ListGroupsForUser(c.Request.Context(), actorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, models.ToGroupSummaries(groups))
}

// GetGroup returns the group detail including the member list. Members
// only.
func (h *Handler) GetGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	group, err := h.db.GetGroupDetail(c.Request.Context(), groupID, actorID(c))
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
	c.JSON(http.StatusOK, models.ToGroupDetail(group))
}

// JoinGroup adds the authenticated user to the group. Joining twice is not
// an error.
func (h *Handler) JoinGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	already, err := h.db.AddMember(c.Request.Context(), groupID, actorID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Already a member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LeaveGroup removes the authenticated user from the group. Leaving a group
// the user is not a member of is an error, unlike joining twice.
func (h *Handler) LeaveGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if err := h.db.RemoveMember(c.Request.Context(), groupID, actorID(c)); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		case errors.Is(err, database.ErrNotMember):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not a member"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// InviteToGroup adds another user to the group by username. The inviter
// must be a member; inviting an existing member is a no-op success.
func (h *Handler) InviteToGroup(c *gin.Context) {
	groupID, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	var req models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	ctx := c.Request.Context()

	// The inviter's own membership gates the operation.
	if _, err := h.db.GetGroupDetail(ctx, groupID, actorID(c)); err != nil {
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

	invitee, err := h.db.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := h.db.AddMember(ctx, groupID, invitee.ID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

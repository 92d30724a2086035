package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schedoosh/schedoosh/internal/api/auth"
	"github.com/schedoosh/schedoosh/internal/database"
)

// Handler serves the authenticated API routes.
type Handler struct {
	db *database.Client
}

// New creates a new handler backed by the given database client.
func New(db *database.Client) *Handler {
	return &Handler{db: db}
}

// actorID returns the authenticated user's id from the gin context. The
// auth middleware guarantees it is set on every protected route.
func actorID(c *gin.Context) uint {
	return c.MustGet(auth.UserIDKey).(uint)
}

// pathID parses the :id route parameter. A non-numeric id is treated the
// same as a missing resource.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/schedoosh/schedoosh/internal/config"
	"github.com/schedoosh/schedoosh/internal/database"
)

// Handler serves registration and login and owns the token secret.
type Handler struct {
	db       *database.Client
	secret   []byte
	validity time.Duration
}

// New creates a new auth handler.
func New(db *database.Client, cfg *config.AuthConfig) *Handler {
	return &Handler{
		db:       db,
		secret:   []byte(cfg.JWTSecret),
		validity: cfg.TokenValidity,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := h.db.CreateUser(c.Request.Context(), req.Username, hash); err != nil {
		if errors.Is(err, database.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := h.db.GetUserByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := GenerateToken(user.ID, h.secret, h.validity)
	if err != nil {
		log.Error("failed to sign token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/store"
)

type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(s *store.Store) *AuthHandler { return &AuthHandler{Store: s} }

// Signup: POST /auth/signup. Issues a fresh opaque id; the store may still
// swap it for its own, so the response profile is authoritative.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be jobseeker or jobprovider"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.Store.GetProfileByEmail(email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		storeError(c, err)
		return
	}

	profile, err := h.Store.CreateProfile(uuid.NewString(), strings.TrimSpace(req.Username), email, req.Role)
	if err != nil {
		storeError(c, err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}
	if err := h.Store.SaveCredential(profile.ID, string(hash)); err != nil {
		storeError(c, err)
		return
	}
	auth.CreateSession(c.Writer, profile.ID)
	c.JSON(http.StatusCreated, profile)
}

// Login: POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	profile, err := h.Store.GetProfileByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		storeError(c, err)
		return
	}
	cred, err := h.Store.GetCredential(profile.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		storeError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	auth.CreateSession(c.Writer, profile.ID)
	c.JSON(http.StatusOK, profile)
}

// Logout: POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSession(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me: GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	profile, err := h.Store.GetProfile(uid)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

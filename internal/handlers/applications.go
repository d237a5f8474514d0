package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/policy"
	"github.com/hirepath/hirepath/internal/store"
	"github.com/hirepath/hirepath/internal/validation"
)

type ApplicationHandler struct {
	Store *store.Store
}

func NewApplicationHandler(s *store.Store) *ApplicationHandler {
	return &ApplicationHandler{Store: s}
}

// List: GET /applications, optional ?q= substring search over company and
// role. Always scoped to the authenticated seeker.
func (h *ApplicationHandler) List(c *gin.Context) {
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	var (
		apps []models.Application
		err  error
	)
	if q := c.Query("q"); q != "" {
		apps, err = h.Store.SearchApplications(uid, q)
	} else {
		apps, err = h.Store.ListApplications(uid)
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": apps, "total": len(apps)})
}

// Create: POST /applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req struct {
		Company     string `json:"company"`
		Role        string `json:"role"`
		Status      string `json:"status"`
		Notes       string `json:"notes"`
		AppliedDate string `json:"applied_date"` // YYYY-MM-DD, defaults to today
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.StatusApplied
	}
	if errs := validation.Application(req.Company, req.Role, req.Status); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	applied, ok := parseDate(req.AppliedDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "applied_date must be YYYY-MM-DD"})
		return
	}
	var appliedDate time.Time
	if applied != nil {
		appliedDate = *applied
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	app, err := h.Store.AddApplication(uid, req.Company, req.Role, req.Status, req.Notes, appliedDate)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus: PUT /applications/:id/status. Allowed for the owning
// seeker, or for a provider whose posting the application answered.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	app, err := h.Store.GetApplication(id)
	if err != nil {
		storeError(c, err)
		return
	}
	if !policy.Owns(uid, *app) {
		linked, err := h.Store.OwnsLinkedPosting(uid, id)
		if err != nil {
			storeError(c, err)
			return
		}
		if !linked {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	}
	updated, err := h.Store.UpdateApplicationStatus(id, req.Status)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete: DELETE /applications/:id, owner only.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	app, err := h.Store.GetApplication(id)
	if err != nil {
		storeError(c, err)
		return
	}
	if !policy.Owns(uid, *app) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.Store.DeleteApplication(id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}

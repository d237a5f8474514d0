package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirepath/hirepath/internal/analytics"
	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/store"
)

type AnalyticsHandler struct {
	Store *store.Store
}

func NewAnalyticsHandler(s *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{Store: s}
}

// Stats: GET /analytics/stats — status counts and success rate over the
// seeker's applications.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	apps, err := h.Store.ListApplications(uid)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics.ComputeStats(apps))
}

// Followups: GET /analytics/followups — applications due for renewed
// contact as of today.
func (h *AnalyticsHandler) Followups(c *gin.Context) {
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	apps, err := h.Store.ListApplications(uid)
	if err != nil {
		storeError(c, err)
		return
	}
	due := analytics.UpcomingFollowups(apps, time.Now())
	c.JSON(http.StatusOK, gin.H{"items": due, "total": len(due)})
}

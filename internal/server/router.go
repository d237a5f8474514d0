// Package server wires the router: middleware chain, health endpoints,
// and the versioned API routes.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/handlers"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/policy"
	"github.com/hirepath/hirepath/internal/store"
)

// New constructs the root handler with all routes and middleware applied.
func New(db *gorm.DB, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	st := store.New(db, log)

	// RequireAuth double-checks that the session still maps to a real user.
	auth.SetUserVerifier(func(_ context.Context, uid string) bool {
		var count int64
		if err := db.Model(&models.Profile{}).Where("id = ?", uid).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	resolveRole := func(_ context.Context, uid string) (string, bool) {
		p, err := st.GetProfile(uid)
		if err != nil {
			return "", false
		}
		return p.Role, true
	}

	r := gin.New()
	r.Use(requestLogger(log), recovery(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		// Lightweight DB check; details stay out of the body.
		if err := db.Exec("SELECT 1").Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authH := handlers.NewAuthHandler(st)
	appH := handlers.NewApplicationHandler(st)
	postH := handlers.NewPostingHandler(st)
	statsH := handlers.NewAnalyticsHandler(st)

	api := r.Group("/api/v1", auth.Middleware())

	api.POST("/auth/signup", authH.Signup)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/logout", authH.Logout)
	api.GET("/auth/me", auth.RequireAuth(), authH.Me)

	seeker := api.Group("", auth.RequireAuth(), policy.RequireRole(resolveRole, models.RoleJobseeker))
	{
		seeker.GET("/applications", appH.List)
		seeker.POST("/applications", appH.Create)
		seeker.DELETE("/applications/:id", appH.Delete)
		seeker.GET("/analytics/stats", statsH.Stats)
		seeker.GET("/analytics/followups", statsH.Followups)
		seeker.POST("/jobs/:id/apply", postH.Apply)
	}

	// Status updates are shared: the owning seeker or the provider whose
	// posting the application answered. The handler decides.
	api.PUT("/applications/:id/status", auth.RequireAuth(), appH.UpdateStatus)

	// Browsing the board only needs a session.
	api.GET("/jobs", auth.RequireAuth(), postH.Board)

	provider := api.Group("", auth.RequireAuth(), policy.RequireRole(resolveRole, models.RoleJobprovider))
	{
		provider.GET("/postings", postH.ListMine)
		provider.POST("/postings", postH.Create)
		provider.PUT("/postings/:id", postH.Update)
		provider.DELETE("/postings/:id", postH.Delete)
		provider.GET("/postings/:id/applicants", postH.Applicants)
		provider.GET("/applicants", postH.AllApplicants)
	}

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		log.Error("panic recovered", zap.Any("panic", rec))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}

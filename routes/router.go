package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matchday-forum/matchday/config"
	"github.com/matchday-forum/matchday/controllers"
	"github.com/matchday-forum/matchday/middleware"
	"github.com/matchday-forum/matchday/rewards"
	"github.com/matchday-forum/matchday/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, ledger *rewards.Ledger, rules *rewards.RulesSource, limiter *rewards.SubmissionLimiter) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(db, ledger, limiter)
	rewardController := controllers.NewRewardController(ledger, limiter)
	sessionController := controllers.NewSessionController()
	configController := controllers.NewConfigController(rules)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api/v1")

	postsGroup := api.Group("/posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.GET("/:id", postController.GetPost)

	// Public stats endpoints
	api.GET("/stats", statsController.GetStats)
	api.GET("/posts/:id/stats", statsController.GetPostStats)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.POST("/auth/logout", sessionController.Logout)

	protected.POST("/posts", postController.CreatePost)
	protected.POST("/submissions/preview", postController.PreviewPost)
	protected.POST("/posts/:id/comments", postController.CreateComment)
	protected.POST("/posts/:id/like", postController.LikePost)

	protected.GET("/limits", rewardController.Limits)
	protected.GET("/rewards/me", rewardController.Me)
	protected.POST("/rewards/login", rewardController.DailyLogin)
	protected.POST("/rewards/grant/:action", rewardController.Grant)

	protected.GET("/admin/rules", configController.GetRules)
	protected.PUT("/admin/rules", configController.UpdateRules)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}

package router

import (
	"fmt"
	"strings"

	"github.com/afftrack-next/internal/cache"
	"github.com/afftrack-next/internal/config"
	adminhandlers "github.com/afftrack-next/internal/http/handlers/admin"
	"github.com/afftrack-next/internal/logger"
	"github.com/afftrack-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "aff"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)
			admin.GET("/login/captcha", adminHandler.GetLoginCaptcha)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)
				authorized.GET("/authz/me", adminHandler.GetAuthzMe)

				// 全局仪表盘
				authorized.GET("/dashboard/stats", adminHandler.GetDashboardStats)
				authorized.GET("/dashboard/leaderboards", adminHandler.GetDashboardLeaderboards)
				authorized.GET("/dashboard/series", adminHandler.GetDashboardSeries)
				authorized.GET("/dashboard/acquisition", adminHandler.GetDashboardAcquisition)

				// 团队管理
				authorized.GET("/teams", adminHandler.GetTeams)
				authorized.POST("/teams", adminHandler.CreateTeam)
				authorized.GET("/teams/:id", adminHandler.GetTeam)
				authorized.DELETE("/teams/:id", adminHandler.DeleteTeam)
				authorized.GET("/teams/:id/stats", adminHandler.GetTeamStats)
				authorized.GET("/teams/:id/bookmakers", adminHandler.GetTeamBookmakers)
				authorized.GET("/teams/:id/series", adminHandler.GetTeamSeries)
				authorized.GET("/teams/:id/links", adminHandler.GetTeamLinks)
				authorized.PUT("/teams/:id/links", adminHandler.UpsertTeamLink)

				// 社区管理员
				authorized.GET("/cms", adminHandler.GetCMs)
				authorized.GET("/cms/:id", adminHandler.GetCM)
				authorized.GET("/cms/:id/stats", adminHandler.GetCMStats)
				authorized.GET("/cms/:id/bookmakers", adminHandler.GetCMBookmakers)
				authorized.GET("/cms/:id/series", adminHandler.GetCMSeries)
				authorized.GET("/cms/:id/links", adminHandler.GetCMLinks)
				authorized.PUT("/cms/:id/links", adminHandler.UpsertCMLink)

				// 人员档案
				authorized.GET("/profiles", adminHandler.GetProfiles)
				authorized.POST("/profiles", adminHandler.CreateProfile)
				authorized.DELETE("/profiles/:id", adminHandler.DeleteProfile)

				// 博彩平台
				authorized.GET("/bookmakers", adminHandler.GetBookmakers)
				authorized.POST("/bookmakers", adminHandler.CreateBookmaker)
				authorized.POST("/bookmakers/:id/deactivate", adminHandler.DeactivateBookmaker)
				authorized.DELETE("/bookmakers/:id", adminHandler.DeleteBookmaker)

				// 绩效录入
				authorized.POST("/entries", adminHandler.CreateEntry)
				authorized.GET("/entries", adminHandler.GetEntries)
				authorized.GET("/entries/recent", adminHandler.GetRecentEntries)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

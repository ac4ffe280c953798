package router

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/handler"
	"github.com/renohub/rns/internal/middleware"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "renovation-service",
		})
	})

	authRequired := middleware.AuthRequired(cfg.JWT)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 管理员登录
		authHandler := handler.NewAuthHandler(db, cfg.JWT)
		v1.POST("/auth/login", authHandler.Login)

		// 案例相关路由,读接口公开,写接口仅限管理员
		caseHandler := handler.NewCaseHandler(db)
		cases := v1.Group("/cases")
		{
			cases.GET("", caseHandler.ListCases)
			cases.GET("/:id", caseHandler.GetCase)
			cases.POST("", authRequired, caseHandler.CreateCase)
			cases.PUT("/:id", authRequired, caseHandler.UpdateCase)
			cases.DELETE("/:id", authRequired, caseHandler.DeleteCase)
			cases.PATCH("/:id/status", authRequired, caseHandler.ToggleStatus)
			cases.PATCH("/:id/featured", authRequired, caseHandler.ToggleFeatured)
		}

		// 潜客相关路由,提交公开,其余仅限管理员
		leadHandler := handler.NewLeadHandler(db)
		leads := v1.Group("/leads")
		{
			leads.POST("", leadHandler.CreateLead)
			leads.GET("", authRequired, leadHandler.ListLeads)
			leads.GET("/:id", authRequired, leadHandler.GetLead)
			leads.PUT("/:id", authRequired, leadHandler.UpdateLead)
			leads.DELETE("/:id", authRequired, leadHandler.DeleteLead)
		}
		v1.GET("/export/leads", authRequired, leadHandler.ExportLeads)

		// 统计看板
		statsHandler := handler.NewStatsHandler(db)
		v1.GET("/stats", authRequired, statsHandler.GetStats)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/database"
	"github.com/renohub/rns/internal/logger"
	"github.com/renohub/rns/internal/router"
	"github.com/renohub/rns/internal/scheduler"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Setup(cfg.Log)

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化默认管理员账户
	if err := database.EnsureAdmin(db, cfg.Admin); err != nil {
		logger.Fatal("Failed to ensure admin account: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, cfg)

	// 启动定时任务
	scheduler.Start(db, cfg)

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/logic"
	"gorm.io/gorm"
)

type StatsHandler struct {
	statsLogic *logic.StatsLogic
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsLogic: logic.NewStatsLogic(db),
	}
}

// GetStats 获取管理后台统计数据 (管理员功能)
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsLogic.ComputeStats()
	if err != nil {
		respondError(c, err, "获取统计数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/logic"
)

// AuthRequired 管理员接口的会话令牌校验,失败时直接中断请求
func AuthRequired(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "未提供有效的认证信息",
			})
			return
		}

		claims, err := logic.ParseToken(token, cfg.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "认证信息无效或已过期",
			})
			return
		}

		c.Set("adminId", claims.AdminId)
		c.Set("username", claims.Username)
		c.Next()
	}
}

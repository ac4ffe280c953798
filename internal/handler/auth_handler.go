package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/logic"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authLogic *logic.AuthLogic
}

func NewAuthHandler(db *gorm.DB, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authLogic: logic.NewAuthLogic(db, cfg),
	}
}

// Login 管理员登录,成功返回会话令牌
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	token, admin, err := h.authLogic.Login(input.Username, input.Password)
	if err != nil {
		respondError(c, err, "登录失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "登录成功",
		"token":   token,
		"admin":   admin,
	})
}

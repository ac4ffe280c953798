package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/logger"
	"github.com/renohub/rns/internal/logic"
)

// respondError 将业务错误映射为对应的HTTP响应
func respondError(c *gin.Context, err error, fallback string) {
	var ve *logic.ValidationError
	switch {
	case errors.As(err, &ve):
		body := gin.H{"success": false, "error": ve.Message}
		if len(ve.Fields) > 0 {
			body["missingFields"] = ve.Fields
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, logic.ErrCaseNotFound), errors.Is(err, logic.ErrLeadNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, logic.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
	default:
		logger.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fallback,
			"message": err.Error(),
		})
	}
}

// bindError 请求体解析失败的统一响应
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请求参数格式错误", "message": err.Error()})
}

// floatQuery 解析可选的浮点查询参数,缺失或无法解析时返回nil
func floatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// intQuery 解析可选的整数查询参数,缺失或无法解析时返回nil
func intQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

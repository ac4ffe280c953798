package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/logic"
	"gorm.io/gorm"
)

type CaseHandler struct {
	caseLogic *logic.CaseLogic
}

func NewCaseHandler(db *gorm.DB) *CaseHandler {
	return &CaseHandler{
		caseLogic: logic.NewCaseLogic(db),
	}
}

// ListCases 获取案例列表
func (h *CaseHandler) ListCases(c *gin.Context) {
	filter := logic.CaseFilter{
		Style:      c.Query("style"),
		MinArea:    floatQuery(c, "minArea"),
		MaxArea:    floatQuery(c, "maxArea"),
		MinPrice:   floatQuery(c, "minPrice"),
		MaxPrice:   floatQuery(c, "maxPrice"),
		Status:     c.Query("status"),
		Featured:   c.Query("featured") == "true",
		IncludeAll: c.Query("includeAll") != "", // 管理后台使用
	}

	cases, err := h.caseLogic.ListCases(filter)
	if err != nil {
		respondError(c, err, "获取案例列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(cases),
		"data":    cases,
	})
}

// GetCase 获取单个案例详情
func (h *CaseHandler) GetCase(c *gin.Context) {
	item, err := h.caseLogic.GetCase(c.Param("id"))
	if err != nil {
		respondError(c, err, "获取案例详情失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// CreateCase 创建案例 (管理员功能)
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var input logic.CreateCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.caseLogic.CreateCase(&input)
	if err != nil {
		respondError(c, err, "创建案例失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "案例创建成功",
		"data":    item,
	})
}

// UpdateCase 更新案例,仅更新请求中提供的字段 (管理员功能)
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	var input logic.UpdateCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.caseLogic.UpdateCase(c.Param("id"), &input)
	if err != nil {
		respondError(c, err, "更新案例失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "案例更新成功",
		"data":    item,
	})
}

// DeleteCase 删除案例 (管理员功能)
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	if err := h.caseLogic.DeleteCase(c.Param("id")); err != nil {
		respondError(c, err, "删除案例失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "案例删除成功"})
}

// ToggleStatus 切换案例发布状态 (管理员功能)
func (h *CaseHandler) ToggleStatus(c *gin.Context) {
	item, err := h.caseLogic.ToggleCaseStatus(c.Param("id"))
	if err != nil {
		respondError(c, err, "更新案例状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "案例状态已更新",
		"data":    item,
	})
}

// ToggleFeatured 切换案例推荐标记 (管理员功能)
func (h *CaseHandler) ToggleFeatured(c *gin.Context) {
	item, err := h.caseLogic.ToggleCaseFeatured(c.Param("id"))
	if err != nil {
		respondError(c, err, "更新案例推荐标记失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "案例推荐标记已更新",
		"data":    item,
	})
}

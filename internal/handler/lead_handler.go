package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/logic"
	"github.com/renohub/rns/internal/model"
	"gorm.io/gorm"
)

// csvHeader 潜客导出表头
var csvHeader = []string{
	"潜客ID", "姓名", "电话", "物业类型", "面积(㎡)", "预算(万元)",
	"风格偏好", "服务类型", "时间规划", "评分", "等级", "状态", "提交时间",
}

type LeadHandler struct {
	leadLogic *logic.LeadLogic
}

func NewLeadHandler(db *gorm.DB) *LeadHandler {
	return &LeadHandler{
		leadLogic: logic.NewLeadLogic(db),
	}
}

// leadFilterFromQuery 从查询参数构建筛选条件
func leadFilterFromQuery(c *gin.Context) logic.LeadFilter {
	return logic.LeadFilter{
		Status:   c.Query("status"),
		MinScore: intQuery(c, "minScore"),
		MaxScore: intQuery(c, "maxScore"),
		SortBy:   c.DefaultQuery("sortBy", "score"),
		Order:    c.DefaultQuery("order", "desc"),
	}
}

// ListLeads 获取潜客列表 (管理员功能)
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadLogic.ListLeads(leadFilterFromQuery(c))
	if err != nil {
		respondError(c, err, "获取潜客列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(leads),
		"data":    leads,
	})
}

// GetLead 获取单个潜客详情 (管理员功能)
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadLogic.GetLead(c.Param("id"))
	if err != nil {
		respondError(c, err, "获取潜客详情失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": lead})
}

// CreateLead 提交潜客信息 (公开接口)
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var input logic.CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	lead, err := h.leadLogic.CreateLead(&input)
	if err != nil {
		respondError(c, err, "提交失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "提交成功,我们会尽快与您联系",
		"data":    lead,
		"score":   lead.Score,
	})
}

// UpdateLead 更新潜客跟进状态 (管理员功能)
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var input struct {
		Status model.LeadStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	lead, err := h.leadLogic.UpdateLeadStatus(c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err, "更新潜客信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "潜客信息更新成功",
		"data":    lead,
	})
}

// DeleteLead 删除潜客 (管理员功能)
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.leadLogic.DeleteLead(c.Param("id")); err != nil {
		respondError(c, err, "删除潜客失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "潜客删除成功"})
}

// ExportLeads 导出潜客CSV,支持与列表相同的筛选条件 (管理员功能)
func (h *LeadHandler) ExportLeads(c *gin.Context) {
	leads, err := h.leadLogic.ListLeads(leadFilterFromQuery(c))
	if err != nil {
		respondError(c, err, "导出潜客数据失败")
		return
	}

	var buf bytes.Buffer
	buf.WriteString("\ufeff") // UTF-8 BOM,便于Excel识别中文

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		respondError(c, err, "导出潜客数据失败")
		return
	}
	for _, lead := range leads {
		styles := make([]string, 0, len(lead.Styles))
		for _, s := range lead.Styles {
			styles = append(styles, model.StyleLabel(model.CaseStyle(s)))
		}
		record := []string{
			lead.Id,
			lead.Name,
			lead.Phone,
			model.PropertyTypeLabel(lead.PropertyType),
			strconv.FormatFloat(lead.Area, 'f', -1, 64),
			strconv.FormatFloat(lead.Budget, 'f', -1, 64),
			strings.Join(styles, "、"),
			model.RenovationStageLabel(lead.Stage),
			model.TimelineLabel(lead.Timeline),
			strconv.Itoa(lead.Score),
			logic.GetLeadGrade(lead.Score).Grade,
			model.LeadStatusLabel(lead.Status),
			lead.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			respondError(c, err, "导出潜客数据失败")
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		respondError(c, err, "导出潜客数据失败")
		return
	}

	filename := fmt.Sprintf("leads_%s.csv", time.Now().Format("20060102_1504"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

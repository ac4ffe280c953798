package logic

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/renohub/rns/internal/model"
	"gorm.io/gorm"
)

// phonePattern 11位手机号,第二位3-9
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// leadSortColumns 允许的排序字段
var leadSortColumns = map[string]string{
	"score":       "score",
	"submittedAt": "submitted_at",
}

// LeadLogic 潜客业务逻辑
type LeadLogic struct {
	db *gorm.DB
}

// NewLeadLogic 创建潜客业务逻辑
func NewLeadLogic(db *gorm.DB) *LeadLogic {
	return &LeadLogic{db: db}
}

// LeadFilter 潜客列表筛选与排序条件
type LeadFilter struct {
	Status   string
	MinScore *int
	MaxScore *int
	SortBy   string // score 或 submittedAt,其余取值回落为 score
	Order    string // asc 或 desc,其余取值回落为 desc
}

// ListLeads 获取潜客列表,提交时间倒序作为次级排序保证结果稳定
func (l *LeadLogic) ListLeads(filter LeadFilter) ([]model.LeadModel, error) {
	query := l.db.Model(&model.LeadModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinScore != nil {
		query = query.Where("score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		query = query.Where("score <= ?", *filter.MaxScore)
	}

	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}
	column, ok := leadSortColumns[filter.SortBy]
	if !ok {
		// 默认按评分降序
		column, direction = "score", "DESC"
	}

	var leads []model.LeadModel
	order := fmt.Sprintf("%s %s, submitted_at DESC", column, direction)
	if err := query.Order(order).Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("获取潜客列表失败: %w", err)
	}
	return leads, nil
}

// GetLead 获取潜客详情
func (l *LeadLogic) GetLead(id string) (*model.LeadModel, error) {
	var lead model.LeadModel
	if err := l.db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("获取潜客详情失败: %w", err)
	}
	return &lead, nil
}

// CreateLeadInput 前台潜客提交参数,不含评分与状态,二者由服务端决定
type CreateLeadInput struct {
	Name         string                `json:"name"`
	Phone        string                `json:"phone"`
	PropertyType model.PropertyType    `json:"propertyType"`
	Area         *float64              `json:"area"`
	Budget       *float64              `json:"budget"`
	Styles       []string              `json:"styles"`
	Stage        model.RenovationStage `json:"stage"`
	Timeline     model.Timeline        `json:"timeline"`
}

// missingFields 收集缺失的必填字段
func (in *CreateLeadInput) missingFields() []string {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.PropertyType == "" {
		missing = append(missing, "propertyType")
	}
	if in.Area == nil {
		missing = append(missing, "area")
	}
	if in.Budget == nil {
		missing = append(missing, "budget")
	}
	if in.Styles == nil {
		missing = append(missing, "styles")
	}
	if in.Stage == "" {
		missing = append(missing, "stage")
	}
	if in.Timeline == "" {
		missing = append(missing, "timeline")
	}
	return missing
}

// CreateLead 创建潜客记录,评分在写入前同步计算
func (l *LeadLogic) CreateLead(input *CreateLeadInput) (*model.LeadModel, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, newValidationError("缺少必填字段", missing...)
	}
	if *input.Area <= 0 {
		return nil, newValidationError("面积必须是正数")
	}
	if *input.Budget <= 0 {
		return nil, newValidationError("预算必须是正数")
	}
	if len(input.Styles) == 0 {
		return nil, newValidationError("至少需要选择一种风格")
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, newValidationError("请输入有效的手机号")
	}

	lead := &model.LeadModel{
		Name:         input.Name,
		Phone:        input.Phone,
		PropertyType: input.PropertyType,
		Area:         *input.Area,
		Budget:       *input.Budget,
		Styles:       model.StringList(input.Styles),
		Stage:        input.Stage,
		Timeline:     input.Timeline,
		Score:        CalculateLeadScore(*input.Budget, *input.Area, input.Timeline),
		Status:       model.LeadStatusPending, // 无论调用方传什么,新潜客一律待跟进
	}

	if err := l.db.Create(lead).Error; err != nil {
		return nil, fmt.Errorf("创建潜客记录失败: %w", err)
	}
	return lead, nil
}

// UpdateLeadStatus 更新潜客跟进状态,status 是唯一可由后台修改的字段
func (l *LeadLogic) UpdateLeadStatus(id string, status model.LeadStatus) (*model.LeadModel, error) {
	lead, err := l.GetLead(id)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, newValidationError("无效的状态值")
	}

	if err := l.db.Model(lead).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("更新潜客信息失败: %w", err)
	}
	lead.Status = status
	return lead, nil
}

// DeleteLead 删除潜客(物理删除)
func (l *LeadLogic) DeleteLead(id string) error {
	lead, err := l.GetLead(id)
	if err != nil {
		return err
	}
	if err := l.db.Delete(lead).Error; err != nil {
		return fmt.Errorf("删除潜客失败: %w", err)
	}
	return nil
}

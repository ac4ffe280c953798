package logic

import (
	"errors"
	"fmt"

	"github.com/renohub/rns/internal/model"
	"gorm.io/gorm"
)

// CaseLogic 案例业务逻辑
type CaseLogic struct {
	db *gorm.DB
}

// NewCaseLogic 创建案例业务逻辑
func NewCaseLogic(db *gorm.DB) *CaseLogic {
	return &CaseLogic{db: db}
}

// CaseFilter 案例列表筛选条件,所有字段可选,AND 组合
type CaseFilter struct {
	Style      string
	MinArea    *float64
	MaxArea    *float64
	MinPrice   *float64
	MaxPrice   *float64
	Status     string
	Featured   bool // 仅在显式为 true 时生效
	IncludeAll bool // 管理后台使用,包含草稿
}

// ListCases 获取案例列表,推荐案例优先,其次按创建时间倒序
func (l *CaseLogic) ListCases(filter CaseFilter) ([]model.CaseModel, error) {
	query := l.db.Model(&model.CaseModel{})

	// 默认只返回已发布的案例(除非明确指定状态或 includeAll)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	} else if !filter.IncludeAll {
		query = query.Where("status = ?", model.CaseStatusPublished)
	}

	if filter.Style != "" {
		query = query.Where("style = ?", filter.Style)
	}
	if filter.MinArea != nil {
		query = query.Where("area >= ?", *filter.MinArea)
	}
	if filter.MaxArea != nil {
		query = query.Where("area <= ?", *filter.MaxArea)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Featured {
		query = query.Where("featured = ?", true)
	}

	var cases []model.CaseModel
	if err := query.Order("featured DESC, created_at DESC").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("获取案例列表失败: %w", err)
	}
	return cases, nil
}

// GetCase 获取案例详情
func (l *CaseLogic) GetCase(id string) (*model.CaseModel, error) {
	var item model.CaseModel
	if err := l.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("获取案例详情失败: %w", err)
	}
	return &item, nil
}

// CreateCaseInput 创建案例参数,数值字段用指针区分缺失与零值
type CreateCaseInput struct {
	Title        string           `json:"title"`
	Location     string           `json:"location"`
	Style        model.CaseStyle  `json:"style"`
	Area         *float64         `json:"area"`
	Duration     *int             `json:"duration"`
	Price        *float64         `json:"price"`
	Images       []string         `json:"images"`
	Description  string           `json:"description"`
	Testimonial  string           `json:"testimonial"`
	ForemanName  string           `json:"foremanName"`
	ForemanPhone string           `json:"foremanPhone"`
	Stage        string           `json:"stage"`
	Featured     *bool            `json:"featured"`
	Status       model.CaseStatus `json:"status"`
}

// missingFields 收集缺失的必填字段
func (in *CreateCaseInput) missingFields() []string {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Location == "" {
		missing = append(missing, "location")
	}
	if in.Style == "" {
		missing = append(missing, "style")
	}
	if in.Area == nil {
		missing = append(missing, "area")
	}
	if in.Duration == nil {
		missing = append(missing, "duration")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Images == nil {
		missing = append(missing, "images")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Testimonial == "" {
		missing = append(missing, "testimonial")
	}
	if in.ForemanName == "" {
		missing = append(missing, "foremanName")
	}
	if in.ForemanPhone == "" {
		missing = append(missing, "foremanPhone")
	}
	if in.Stage == "" {
		missing = append(missing, "stage")
	}
	return missing
}

// CreateCase 创建案例,校验全部通过后才写入
func (l *CaseLogic) CreateCase(input *CreateCaseInput) (*model.CaseModel, error) {
	if missing := input.missingFields(); len(missing) > 0 {
		return nil, newValidationError("缺少必填字段", missing...)
	}
	if *input.Area <= 0 {
		return nil, newValidationError("面积必须是正数")
	}
	if *input.Duration <= 0 {
		return nil, newValidationError("工期必须是正数")
	}
	if *input.Price <= 0 {
		return nil, newValidationError("价格必须是正数")
	}
	if len(input.Images) == 0 {
		return nil, newValidationError("至少需要一张图片")
	}

	item := &model.CaseModel{
		Title:        input.Title,
		Location:     input.Location,
		Style:        input.Style,
		Area:         *input.Area,
		Duration:     *input.Duration,
		Price:        *input.Price,
		Images:       model.StringList(input.Images),
		Description:  input.Description,
		Testimonial:  input.Testimonial,
		ForemanName:  input.ForemanName,
		ForemanPhone: input.ForemanPhone,
		Stage:        input.Stage,
		Featured:     input.Featured != nil && *input.Featured,
		Status:       model.CaseStatusDraft, // 未明确发布时默认保存为草稿
	}
	if input.Status != "" {
		item.Status = input.Status
	}

	if err := l.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("创建案例失败: %w", err)
	}
	return item, nil
}

// UpdateCaseInput 更新案例参数,仅更新提供的字段
type UpdateCaseInput struct {
	Title        *string           `json:"title"`
	Location     *string           `json:"location"`
	Style        *model.CaseStyle  `json:"style"`
	Area         *float64          `json:"area"`
	Duration     *int              `json:"duration"`
	Price        *float64          `json:"price"`
	Images       []string          `json:"images"`
	Description  *string           `json:"description"`
	Testimonial  *string           `json:"testimonial"`
	ForemanName  *string           `json:"foremanName"`
	ForemanPhone *string           `json:"foremanPhone"`
	Stage        *string           `json:"stage"`
	Featured     *bool             `json:"featured"`
	Status       *model.CaseStatus `json:"status"`
}

// UpdateCase 部分更新案例,仅对提供的字段重新校验
func (l *CaseLogic) UpdateCase(id string, input *UpdateCaseInput) (*model.CaseModel, error) {
	existing, err := l.GetCase(id)
	if err != nil {
		return nil, err
	}

	if input.Area != nil && *input.Area <= 0 {
		return nil, newValidationError("面积必须是正数")
	}
	if input.Duration != nil && *input.Duration <= 0 {
		return nil, newValidationError("工期必须是正数")
	}
	if input.Price != nil && *input.Price <= 0 {
		return nil, newValidationError("价格必须是正数")
	}
	if input.Images != nil && len(input.Images) == 0 {
		return nil, newValidationError("至少需要一张图片")
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Style != nil {
		updates["style"] = *input.Style
	}
	if input.Area != nil {
		updates["area"] = *input.Area
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Images != nil {
		updates["images"] = model.StringList(input.Images)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Testimonial != nil {
		updates["testimonial"] = *input.Testimonial
	}
	if input.ForemanName != nil {
		updates["foreman_name"] = *input.ForemanName
	}
	if input.ForemanPhone != nil {
		updates["foreman_phone"] = *input.ForemanPhone
	}
	if input.Stage != nil {
		updates["stage"] = *input.Stage
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) == 0 {
		return nil, newValidationError("没有要更新的字段")
	}

	if err := l.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新案例失败: %w", err)
	}
	return l.GetCase(id)
}

// DeleteCase 删除案例(物理删除)
func (l *CaseLogic) DeleteCase(id string) error {
	item, err := l.GetCase(id)
	if err != nil {
		return err
	}
	if err := l.db.Delete(item).Error; err != nil {
		return fmt.Errorf("删除案例失败: %w", err)
	}
	return nil
}

// ToggleCaseStatus 切换案例发布状态 published↔draft
func (l *CaseLogic) ToggleCaseStatus(id string) (*model.CaseModel, error) {
	item, err := l.GetCase(id)
	if err != nil {
		return nil, err
	}

	next := model.CaseStatusPublished
	if item.Status == model.CaseStatusPublished {
		next = model.CaseStatusDraft
	}

	if err := l.db.Model(item).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("更新案例状态失败: %w", err)
	}
	item.Status = next
	return item, nil
}

// ToggleCaseFeatured 切换案例推荐标记
func (l *CaseLogic) ToggleCaseFeatured(id string) (*model.CaseModel, error) {
	item, err := l.GetCase(id)
	if err != nil {
		return nil, err
	}

	next := !item.Featured
	if err := l.db.Model(item).Update("featured", next).Error; err != nil {
		return nil, fmt.Errorf("更新案例推荐标记失败: %w", err)
	}
	item.Featured = next
	return item, nil
}

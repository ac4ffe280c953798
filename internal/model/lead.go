package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadModel 潜客模型,来源为前台多步表单提交
type LeadModel struct {
	Id          string    `json:"id" gorm:"primaryKey;size:36"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// 联系信息
	Name  string `json:"name" gorm:"not null"`
	Phone string `json:"phone" gorm:"not null"`

	// 需求信息
	PropertyType PropertyType    `json:"propertyType"`
	Area         float64         `json:"area"`   // 面积(㎡)
	Budget       float64         `json:"budget"` // 预算(万元)
	Styles       StringList      `json:"styles" gorm:"type:text"`
	Stage        RenovationStage `json:"stage"`
	Timeline     Timeline        `json:"timeline"`

	// 评分在创建时计算一次,之后不可变更
	Score int `json:"score" gorm:"index"`

	Status LeadStatus `json:"status" gorm:"default:'pending';index"`
}

// LeadStatus 潜客跟进状态
type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"   // 待跟进
	LeadStatusContacted LeadStatus = "contacted" // 已联系
	LeadStatusScheduled LeadStatus = "scheduled" // 已预约
	LeadStatusClosed    LeadStatus = "closed"    // 已成交
	LeadStatusAbandoned LeadStatus = "abandoned" // 已放弃
)

// LeadStatusLabels 潜客状态中文名称映射
var LeadStatusLabels = map[LeadStatus]string{
	LeadStatusPending:   "待跟进",
	LeadStatusContacted: "已联系",
	LeadStatusScheduled: "已预约",
	LeadStatusClosed:    "已成交",
	LeadStatusAbandoned: "已放弃",
}

// LeadStatusLabel 返回潜客状态中文名称,未知值原样返回
func LeadStatusLabel(s LeadStatus) string {
	if label, ok := LeadStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid 是否为合法的潜客状态
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusPending, LeadStatusContacted, LeadStatusScheduled,
		LeadStatusClosed, LeadStatusAbandoned:
		return true
	}
	return false
}

// TableName 自定义表名
func (LeadModel) TableName() string {
	return "leads"
}

// BeforeCreate 生成潜客ID
func (l *LeadModel) BeforeCreate(tx *gorm.DB) error {
	if l.Id == "" {
		l.Id = uuid.NewString()
	}
	return nil
}

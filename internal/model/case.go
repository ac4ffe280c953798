package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseModel 装修案例模型
type CaseModel struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 基本信息
	Title    string    `json:"title" gorm:"not null"`
	Location string    `json:"location" gorm:"not null"`
	Style    CaseStyle `json:"style" gorm:"not null;index"`

	// 工程信息
	Area     float64 `json:"area" gorm:"not null"`     // 面积(㎡)
	Duration int     `json:"duration" gorm:"not null"` // 工期(天)
	Price    float64 `json:"price" gorm:"not null"`    // 价格(万元)
	Stage    string  `json:"stage"`                    // 工程进度标签

	// 展示内容
	Images      StringList `json:"images" gorm:"type:text"`
	Description string     `json:"description" gorm:"type:text"`
	Testimonial string     `json:"testimonial" gorm:"type:text"`

	// 工长信息
	ForemanName  string `json:"foremanName"`
	ForemanPhone string `json:"foremanPhone"`

	// 展示状态
	Featured bool       `json:"featured" gorm:"default:false;index"`
	Status   CaseStatus `json:"status" gorm:"default:'draft';index"`
}

// CaseStatus 案例状态
type CaseStatus string

const (
	CaseStatusPublished CaseStatus = "published" // 已发布
	CaseStatusDraft     CaseStatus = "draft"     // 草稿
)

// TableName 自定义表名
func (CaseModel) TableName() string {
	return "cases"
}

// BeforeCreate 生成案例ID
func (c *CaseModel) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// CaseStyle 装修风格
type CaseStyle string

const (
	StyleModern     CaseStyle = "modern"     // 现代
	StyleNordic     CaseStyle = "nordic"     // 北欧
	StyleIndustrial CaseStyle = "industrial" // 工业
	StyleWabisabi   CaseStyle = "wabisabi"   // 侘寂
	StyleLuxury     CaseStyle = "luxury"     // 轻奢
	StyleMinimalist CaseStyle = "minimalist" // 极简
	StyleChinese    CaseStyle = "chinese"    // 中式
	StyleEuropean   CaseStyle = "european"   // 欧式
)

// StyleLabels 风格中文名称映射
var StyleLabels = map[CaseStyle]string{
	StyleModern:     "现代",
	StyleNordic:     "北欧",
	StyleIndustrial: "工业",
	StyleWabisabi:   "侘寂",
	StyleLuxury:     "轻奢",
	StyleMinimalist: "极简",
	StyleChinese:    "中式",
	StyleEuropean:   "欧式",
}

// PropertyType 物业类型
type PropertyType string

const (
	PropertyResidential PropertyType = "residential" // 住宅
	PropertyApartment   PropertyType = "apartment"   // 公寓
	PropertyVilla       PropertyType = "villa"       // 别墅
	PropertyCommercial  PropertyType = "commercial"  // 商业空间
	PropertyOther       PropertyType = "other"       // 其他
)

// PropertyTypeLabels 物业类型中文名称映射
var PropertyTypeLabels = map[PropertyType]string{
	PropertyResidential: "住宅",
	PropertyApartment:   "公寓",
	PropertyVilla:       "别墅",
	PropertyCommercial:  "商业空间",
	PropertyOther:       "其他",
}

// RenovationStage 装修阶段(服务类型)
type RenovationStage string

const (
	StageDesignOnly         RenovationStage = "design_only"         // 仅设计
	StageDesignConstruction RenovationStage = "design_construction" // 设计+施工
	StageConstructionOnly   RenovationStage = "construction_only"   // 仅施工
	StageSupervisionOnly    RenovationStage = "supervision_only"    // 仅监理
)

// RenovationStageLabels 装修阶段中文名称映射
var RenovationStageLabels = map[RenovationStage]string{
	StageDesignOnly:         "仅设计",
	StageDesignConstruction: "设计+施工",
	StageConstructionOnly:   "仅施工",
	StageSupervisionOnly:    "仅监理",
}

// Timeline 时间规划
type Timeline string

const (
	TimelineWithin1Month   Timeline = "within_1_month"     // 1个月内
	TimelineWithin13Months Timeline = "within_1_3_months"  // 1-3个月
	TimelineWithin36Months Timeline = "within_3_6_months"  // 3-6个月
	TimelineOver6Months    Timeline = "over_6_months"      // 6个月以上
	TimelineNoPlan         Timeline = "no_plan"            // 暂无计划
)

// TimelineLabels 时间规划中文名称映射
var TimelineLabels = map[Timeline]string{
	TimelineWithin1Month:   "1个月内",
	TimelineWithin13Months: "1-3个月",
	TimelineWithin36Months: "3-6个月",
	TimelineOver6Months:    "6个月以上",
	TimelineNoPlan:         "暂无计划",
}

// StyleLabel 返回风格中文名称,未知值原样返回
func StyleLabel(s CaseStyle) string {
	if label, ok := StyleLabels[s]; ok {
		return label
	}
	return string(s)
}

// PropertyTypeLabel 返回物业类型中文名称,未知值原样返回
func PropertyTypeLabel(p PropertyType) string {
	if label, ok := PropertyTypeLabels[p]; ok {
		return label
	}
	return string(p)
}

// RenovationStageLabel 返回装修阶段中文名称,未知值原样返回
func RenovationStageLabel(s RenovationStage) string {
	if label, ok := RenovationStageLabels[s]; ok {
		return label
	}
	return string(s)
}

// TimelineLabel 返回时间规划中文名称,未知值原样返回
func TimelineLabel(t Timeline) string {
	if label, ok := TimelineLabels[t]; ok {
		return label
	}
	return string(t)
}

// StringList 以JSON文本存储的字符串数组字段
type StringList []string

// Value 实现 driver.Valuer
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported column type for StringList")
	}
}

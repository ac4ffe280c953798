package logic

import "github.com/renohub/rns/internal/model"

// timelineScores 时间规划加分表,未识别的取值不加分
var timelineScores = map[model.Timeline]int{
	model.TimelineWithin1Month:   10,
	model.TimelineWithin13Months: 7,
	model.TimelineWithin36Months: 5,
	model.TimelineOver6Months:    3,
	model.TimelineNoPlan:         0,
}

// CalculateLeadScore 计算潜客评分,总分范围 50-100
func CalculateLeadScore(budget, area float64, timeline model.Timeline) int {
	score := 50 // 基础分

	// 1. 预算评分 (最高+30分)
	switch {
	case budget >= 50:
		score += 30
	case budget >= 30:
		score += 25
	case budget >= 20:
		score += 20
	case budget >= 10:
		score += 15
	default:
		score += 10
	}

	// 2. 面积评分 (最高+10分)
	switch {
	case area >= 200:
		score += 10
	case area >= 150:
		score += 8
	case area >= 100:
		score += 6
	case area >= 80:
		score += 4
	default:
		score += 2
	}

	// 3. 时间评分 (最高+10分)
	score += timelineScores[timeline]

	if score > 100 {
		score = 100
	}
	return score
}

// LeadGrade 潜客评分等级,用于后台快速分级
type LeadGrade struct {
	Grade string `json:"grade"`
	Label string `json:"label"`
}

// GetLeadGrade 根据评分获取等级
func GetLeadGrade(score int) LeadGrade {
	switch {
	case score >= 90:
		return LeadGrade{Grade: "A", Label: "A级潜客"}
	case score >= 75:
		return LeadGrade{Grade: "B", Label: "B级潜客"}
	case score >= 60:
		return LeadGrade{Grade: "C", Label: "C级潜客"}
	default:
		return LeadGrade{Grade: "D", Label: "D级潜客"}
	}
}

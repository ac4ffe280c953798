package logic

import (
	"fmt"
	"math"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/renohub/rns/internal/model"
	"gorm.io/gorm"
)

// DashboardStats 管理后台统计数据
type DashboardStats struct {
	// 案例统计
	TotalCases     int64 `json:"totalCases"`
	PublishedCases int64 `json:"publishedCases"`
	DraftCases     int64 `json:"draftCases"`
	FeaturedCases  int64 `json:"featuredCases"`

	// 潜客统计
	TotalLeads     int64 `json:"totalLeads"`
	HighScoreLeads int64 `json:"highScoreLeads"` // A级潜客(≥90分)
	PendingLeads   int64 `json:"pendingLeads"`
	ScheduledLeads int64 `json:"scheduledLeads"`
	ClosedLeads    int64 `json:"closedLeads"`

	// 综合指标
	ConversionRate   string `json:"conversionRate"` // 已成交/总潜客,百分比字符串
	AverageLeadScore int    `json:"averageLeadScore"`
}

// leadStatusCount 按状态分组的潜客数
type leadStatusCount struct {
	Status model.LeadStatus
	Count  int64
}

// StatsLogic 统计业务逻辑
type StatsLogic struct {
	db *gorm.DB
}

// NewStatsLogic 创建统计业务逻辑
func NewStatsLogic(db *gorm.DB) *StatsLogic {
	return &StatsLogic{db: db}
}

// ComputeStats 并发执行各项子查询后汇总为一份看板数据。
// 各子查询互相独立且只读,读到的快照允许存在微小偏差。
func (s *StatsLogic) ComputeStats() (*DashboardStats, error) {
	var (
		totalCases     int64
		publishedCases int64
		draftCases     int64
		featuredCases  int64
		totalLeads     int64
		highScoreLeads int64
		statusCounts   []leadStatusCount
		averageScore   float64
	)

	subQueries := []func() error{
		func() error {
			return s.db.Model(&model.CaseModel{}).Count(&totalCases).Error
		},
		func() error {
			return s.db.Model(&model.CaseModel{}).
				Where("status = ?", model.CaseStatusPublished).Count(&publishedCases).Error
		},
		func() error {
			return s.db.Model(&model.CaseModel{}).
				Where("status = ?", model.CaseStatusDraft).Count(&draftCases).Error
		},
		func() error {
			return s.db.Model(&model.CaseModel{}).
				Where("featured = ?", true).Count(&featuredCases).Error
		},
		func() error {
			return s.db.Model(&model.LeadModel{}).Count(&totalLeads).Error
		},
		func() error {
			return s.db.Model(&model.LeadModel{}).
				Where("score >= ?", 90).Count(&highScoreLeads).Error
		},
		func() error {
			return s.db.Model(&model.LeadModel{}).
				Select("status, COUNT(*) AS count").Group("status").Scan(&statusCounts).Error
		},
		func() error {
			return s.db.Model(&model.LeadModel{}).
				Select("COALESCE(AVG(score), 0)").Scan(&averageScore).Error
		},
	}

	pool, err := ants.NewPool(len(subQueries))
	if err != nil {
		return nil, fmt.Errorf("创建统计协程池失败: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	errs := make(chan error, len(subQueries))
	for _, sub := range subQueries {
		wg.Add(1)
		query := sub
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := query(); err != nil {
				errs <- err
			}
		}); err != nil {
			wg.Done()
			errs <- err
		}
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, fmt.Errorf("获取统计数据失败: %w", err)
	}

	stats := &DashboardStats{
		TotalCases:     totalCases,
		PublishedCases: publishedCases,
		DraftCases:     draftCases,
		FeaturedCases:  featuredCases,
		TotalLeads:     totalLeads,
		HighScoreLeads: highScoreLeads,
		ConversionRate: "0.0%",
	}

	byStatus := make(map[model.LeadStatus]int64, len(statusCounts))
	for _, row := range statusCounts {
		byStatus[row.Status] = row.Count
	}
	// 数据中不存在的状态计为0
	stats.PendingLeads = byStatus[model.LeadStatusPending]
	stats.ScheduledLeads = byStatus[model.LeadStatusScheduled]
	stats.ClosedLeads = byStatus[model.LeadStatusClosed]

	// 转化率 (已成交/总潜客),无潜客时避免除零
	if totalLeads > 0 {
		stats.ConversionRate = fmt.Sprintf("%.1f%%",
			float64(stats.ClosedLeads)/float64(totalLeads)*100)
		stats.AverageLeadScore = int(math.Round(averageScore))
	}

	return stats, nil
}

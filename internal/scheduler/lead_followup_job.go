package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/logger"
	"github.com/renohub/rns/internal/model"
	"gorm.io/gorm"
)

// LeadFollowupJob 待跟进潜客提醒任务,只读统计,不修改数据
type LeadFollowupJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewLeadFollowupJob 创建待跟进潜客提醒任务
func NewLeadFollowupJob(db *gorm.DB, cfg *config.Config) *LeadFollowupJob {
	return &LeadFollowupJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *LeadFollowupJob) GetName() string {
	return "lead_followup_reminder"
}

// GetSchedule 获取调度配置
func (j *LeadFollowupJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.FollowupInterval) * time.Second)
}

// Execute 统计超时未跟进的潜客并输出提醒日志
func (j *LeadFollowupJob) Execute() {
	ageHours := j.config.Scheduler.PendingAgeHours
	deadline := time.Now().Add(-time.Duration(ageHours) * time.Hour)

	var overdue int64
	err := j.db.Model(&model.LeadModel{}).
		Where("status = ? AND submitted_at < ?", model.LeadStatusPending, deadline).
		Count(&overdue).Error
	if err != nil {
		logger.Error("Failed to count pending leads: %v", err)
		return
	}

	if overdue > 0 {
		logger.Warn("%d leads have been pending for more than %d hours", overdue, ageHours)
	} else {
		logger.Debug("No overdue pending leads")
	}
}

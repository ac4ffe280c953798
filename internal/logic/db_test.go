package logic

import (
	"testing"
	"time"

	"github.com/renohub/rns/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// newTestDB 创建内存SQLite测试库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 单连接,保证并发子查询在内存库上串行执行
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.CaseModel{},
		&model.LeadModel{},
		&model.AdminModel{},
	))
	return db
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// seedCase 直接写入一条案例记录
func seedCase(t *testing.T, db *gorm.DB, item *model.CaseModel) *model.CaseModel {
	t.Helper()
	if item.Title == "" {
		item.Title = "现代简约 · 120㎡两居室"
	}
	if item.Location == "" {
		item.Location = "北京 · 朝阳区"
	}
	if item.Style == "" {
		item.Style = model.StyleModern
	}
	if item.Area == 0 {
		item.Area = 120
	}
	if item.Duration == 0 {
		item.Duration = 60
	}
	if item.Price == 0 {
		item.Price = 25
	}
	if item.Images == nil {
		item.Images = model.StringList{"https://example.com/1.jpg"}
	}
	if item.Status == "" {
		item.Status = model.CaseStatusPublished
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// seedLead 直接写入一条潜客记录,评分和状态由调用方指定
func seedLead(t *testing.T, db *gorm.DB, score int, status model.LeadStatus, submittedAt time.Time) *model.LeadModel {
	t.Helper()
	lead := &model.LeadModel{
		Name:         "张先生",
		Phone:        "13800138000",
		PropertyType: model.PropertyResidential,
		Area:         100,
		Budget:       20,
		Styles:       model.StringList{"modern"},
		Stage:        model.StageDesignConstruction,
		Timeline:     model.TimelineWithin13Months,
		Score:        score,
		Status:       status,
		SubmittedAt:  submittedAt,
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

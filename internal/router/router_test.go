package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/renohub/rns/internal/config"
	"github.com/renohub/rns/internal/database"
	"github.com/renohub/rns/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
		Admin: config.AdminConfig{Username: "admin", Password: "admin123", Name: "测试管理员"},
	}
}

// newTestServer 在内存库上拉起完整路由
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.CaseModel{},
		&model.LeadModel{},
		&model.AdminModel{},
	))

	cfg := testConfig()
	require.NoError(t, database.EnsureAdmin(db, cfg.Admin))

	return Setup(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// loginAdmin 用初始管理员换取会话令牌
func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
}

func TestLoginFlow(t *testing.T) {
	r, _ := newTestServer(t)

	t.Run("凭据正确返回令牌", func(t *testing.T) {
		token := loginAdmin(t, r)
		assert.NotEmpty(t, token)
	})

	t.Run("凭据错误返回401", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"username": "admin",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/leads"},
		{http.MethodGet, "/api/v1/leads/some-id"},
		{http.MethodPut, "/api/v1/leads/some-id"},
		{http.MethodDelete, "/api/v1/leads/some-id"},
		{http.MethodPost, "/api/v1/cases"},
		{http.MethodPut, "/api/v1/cases/some-id"},
		{http.MethodDelete, "/api/v1/cases/some-id"},
		{http.MethodPatch, "/api/v1/cases/some-id/status"},
		{http.MethodPatch, "/api/v1/cases/some-id/featured"},
		{http.MethodGet, "/api/v1/export/leads"},
		{http.MethodGet, "/api/v1/stats"},
	}
	for _, route := range protected {
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/leads", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLeadSubmissionPublic(t *testing.T) {
	r, db := newTestServer(t)

	// 调用方传入的评分与状态被忽略
	w := doJSON(t, r, http.MethodPost, "/api/v1/leads", "", gin.H{
		"name":         "王先生",
		"phone":        "13900139000",
		"propertyType": "apartment",
		"area":         120,
		"budget":       30,
		"styles":       []string{"modern"},
		"stage":        "design_construction",
		"timeline":     "within_1_month",
		"score":        5,
		"status":       "closed",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	// 50+25+6+10
	assert.Equal(t, float64(91), body["score"])

	var lead model.LeadModel
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, model.LeadStatusPending, lead.Status)
	assert.Equal(t, 91, lead.Score)
}

func TestLeadSubmissionValidation(t *testing.T) {
	r, _ := newTestServer(t)

	t.Run("缺少必填字段", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/leads", "", gin.H{
			"name": "王先生",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "缺少必填字段", body["error"])
		assert.NotEmpty(t, body["missingFields"])
	})

	t.Run("手机号非法", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/leads", "", gin.H{
			"name":         "王先生",
			"phone":        "12345678901",
			"propertyType": "apartment",
			"area":         120,
			"budget":       30,
			"styles":       []string{"modern"},
			"stage":        "design_construction",
			"timeline":     "within_1_month",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "请输入有效的手机号", body["error"])
	})
}

func TestLeadStatusUpdateOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	token := loginAdmin(t, r)

	lead := &model.LeadModel{
		Name: "张先生", Phone: "13800138000",
		PropertyType: model.PropertyResidential,
		Area:         100, Budget: 20,
		Styles: model.StringList{"modern"},
		Stage:  model.StageDesignConstruction, Timeline: model.TimelineWithin13Months,
		Score: 80, Status: model.LeadStatusPending,
	}
	require.NoError(t, db.Create(lead).Error)

	w := doJSON(t, r, http.MethodPut, "/api/v1/leads/"+lead.Id, token, gin.H{"status": "contacted"})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("非法状态返回400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/v1/leads/"+lead.Id, token, gin.H{"status": "archived"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "无效的状态值", body["error"])
	})

	t.Run("未知ID返回404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/v1/leads/no-such-id", token, gin.H{"status": "closed"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCaseVisibilityOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	token := loginAdmin(t, r)

	// 通过后台接口创建一篇草稿
	w := doJSON(t, r, http.MethodPost, "/api/v1/cases", token, gin.H{
		"title":        "现代简约 · 120㎡两居室",
		"location":     "北京 · 朝阳区",
		"style":        "modern",
		"area":         120,
		"duration":     60,
		"price":        25,
		"images":       []string{"https://example.com/1.jpg"},
		"description":  "以白色和灰色为主色调。",
		"testimonial":  "很满意。",
		"foremanName":  "张伟",
		"foremanPhone": "13800138001",
		"stage":        "完工阶段",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.CaseModel
	require.NoError(t, db.First(&created).Error)
	require.Equal(t, model.CaseStatusDraft, created.Status)

	t.Run("前台列表默认不含草稿", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/cases", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(0), body["count"])
	})

	t.Run("发布后对前台可见", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/v1/cases/"+created.Id+"/status", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/v1/cases", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("includeAll返回全部", func(t *testing.T) {
		// 再切回草稿
		w := doJSON(t, r, http.MethodPatch, "/api/v1/cases/"+created.Id+"/status", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/v1/cases?includeAll=true", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("未知案例返回404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/cases/no-such-id", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatsOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	token := loginAdmin(t, r)

	lead := &model.LeadModel{
		Name: "张先生", Phone: "13800138000",
		PropertyType: model.PropertyResidential,
		Area:         100, Budget: 20,
		Styles: model.StringList{"modern"},
		Stage:  model.StageDesignConstruction, Timeline: model.TimelineWithin13Months,
		Score: 92, Status: model.LeadStatusClosed,
	}
	require.NoError(t, db.Create(lead).Error)

	w := doJSON(t, r, http.MethodGet, "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["totalLeads"])
	assert.Equal(t, float64(1), data["highScoreLeads"])
	assert.Equal(t, "100.0%", data["conversionRate"])
}

func TestExportLeadsOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	token := loginAdmin(t, r)

	lead := &model.LeadModel{
		Name: "张先生", Phone: "13800138000",
		PropertyType: model.PropertyResidential,
		Area:         100, Budget: 20,
		Styles: model.StringList{"modern"},
		Stage:  model.StageDesignConstruction, Timeline: model.TimelineWithin13Months,
		Score: 92, Status: model.LeadStatusPending,
	}
	require.NoError(t, db.Create(lead).Error)

	w := doJSON(t, r, http.MethodGet, "/api/v1/export/leads", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	payload := w.Body.String()
	assert.True(t, strings.HasPrefix(payload, "\ufeff"))
	assert.Contains(t, payload, "潜客ID")
	assert.Contains(t, payload, "张先生")
	assert.Contains(t, payload, "现代简约") // 风格以中文名称导出
	assert.Contains(t, payload, "待跟进")
}

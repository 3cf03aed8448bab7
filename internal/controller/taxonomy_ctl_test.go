package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/repository"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupTaxonomyTestRouter(t *testing.T, upstream string) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.AdminSession{})

	sessionRepo := repository.NewSessionRepo(db)
	session := &model.AdminSession{
		SessionID:     "test-session",
		UpstreamToken: "tok",
		Username:      "admin",
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	if err := sessionRepo.Create(context.Background(), session); err != nil {
		t.Fatal(err)
	}
	token, err := middleware.GenerateSessionToken(session.SessionID, session.Username)
	if err != nil {
		t.Fatal(err)
	}

	clients := service.NewClientFactory(upstream, upstream, sessionRepo)
	authSvc := service.NewAuthService(sessionRepo, clients)
	taxonomyCtl := NewTaxonomyController(service.NewTaxonomyService(clients))

	r := gin.New()
	authed := r.Group("/api/admin")
	authed.Use(middleware.JWTAuth(), middleware.SessionAuth(authSvc))
	{
		authed.POST("/partners", taxonomyCtl.CreatePartner)
		authed.PUT("/partners/:id", taxonomyCtl.UpdatePartner)
	}

	return r, token
}

// ==================== 合作品牌增改 ====================

func TestCreatePartnerProxiesToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/partners/" {
			t.Errorf("上游请求错误: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Token tok" {
			t.Errorf("Authorization 头错误: %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if !bytes.Contains(body, []byte(`"Horizon Bank"`)) {
			t.Errorf("请求体未透传: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "name": "Horizon Bank", "logo": "/media/logos/hb.png"}`))
	}))
	defer upstream.Close()

	r, token := setupTaxonomyTestRouter(t, upstream.URL+"/")

	body, _ := json.Marshal(model.Partner{Name: "Horizon Bank", Logo: "/media/logos/hb.png"})
	req := httptest.NewRequest("POST", "/api/admin/partners", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("新建失败: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data model.Partner `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.ID != 7 || resp.Data.Name != "Horizon Bank" {
		t.Errorf("响应数据错误: %+v", resp.Data)
	}
}

func TestUpdatePartnerProxiesToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/partners/7/" {
			t.Errorf("上游请求错误: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "name": "Horizon Bank Intl"}`))
	}))
	defer upstream.Close()

	r, token := setupTaxonomyTestRouter(t, upstream.URL+"/")

	body, _ := json.Marshal(model.Partner{Name: "Horizon Bank Intl"})
	req := httptest.NewRequest("PUT", "/api/admin/partners/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("更新失败: %d %s", w.Code, w.Body.String())
	}
}

func TestPartnerWritesRequireAuth(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("未认证请求不应触达上游")
	}))
	defer upstream.Close()

	r, _ := setupTaxonomyTestRouter(t, upstream.URL+"/")

	req := httptest.NewRequest("POST", "/api/admin/partners", bytes.NewReader([]byte(`{"name": "x"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Errorf("未认证应 401, got %d", w.Code)
	}
}

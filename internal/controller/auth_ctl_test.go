package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

// fakeUpstream 模拟上游鉴权接口
func fakeUpstream(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["username"] != "admin" || req["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail": "Invalid credentials."}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token": "upstream-token", "user": {"id": 1, "username": "admin", "is_staff": true}}`))

		case "/auth/me/":
			if r.Header.Get("Authorization") != "Token upstream-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 1, "username": "admin", "is_staff": true}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func setupAuthTestRouter(t *testing.T, upstream string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.AdminSession{})

	sessionRepo := repository.NewSessionRepo(db)
	clients := service.NewClientFactory(upstream, upstream, sessionRepo)
	authSvc := service.NewAuthService(sessionRepo, clients)
	authCtl := NewAuthController(authSvc)

	r := gin.New()
	r.POST("/api/admin/auth/login", authCtl.Login)

	authed := r.Group("/api/admin")
	authed.Use(middleware.JWTAuth(), middleware.SessionAuth(authSvc))
	{
		authed.GET("/auth/me", authCtl.Me)
		authed.POST("/auth/logout", authCtl.Logout)
	}
	return r
}

func doLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/api/admin/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 登录 ====================

func TestLoginSuccessIssuesLocalJWT(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	r := setupAuthTestRouter(t, upstream.URL+"/")

	w := doLogin(t, r, "admin", "secret")
	if w.Code != 200 {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string          `json:"token"`
			User  json.RawMessage `json:"user"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Data.Token == "" {
		t.Fatal("应返回本地 JWT")
	}
	// 上游 Token 绝不下发
	if bytes.Contains(w.Body.Bytes(), []byte("upstream-token")) {
		t.Error("响应里泄露了上游 Token")
	}
	if !bytes.Contains(resp.Data.User, []byte(`"admin"`)) {
		t.Error("用户信息未透传")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	r := setupAuthTestRouter(t, upstream.URL+"/")

	w := doLogin(t, r, "admin", "wrong")
	if w.Code != 401 {
		t.Errorf("错误凭证应返回 401, got %d", w.Code)
	}
}

// ==================== 受保护接口 ====================

func TestMeRequiresAuth(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	r := setupAuthTestRouter(t, upstream.URL+"/")

	// 无 Token
	req := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Errorf("无 Token 应 401, got %d", w.Code)
	}

	// 伪造 Token
	req = httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Errorf("伪造 Token 应 401, got %d", w.Code)
	}
}

func TestLoginThenMeAndLogout(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	r := setupAuthTestRouter(t, upstream.URL+"/")

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(doLogin(t, r, "admin", "secret").Body.Bytes(), &resp)

	// 带 JWT 访问 me: 透传上游校验
	req := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("me 失败: %d %s", w.Code, w.Body.String())
	}

	// 登出后会话作废，同一 JWT 不再可用
	req = httptest.NewRequest("POST", "/api/admin/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("登出失败: %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Errorf("登出后的 JWT 应被拒绝, got %d", w.Code)
	}
}

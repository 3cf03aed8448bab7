package main

import (
	"context"
	"errors"
	"estate_portal_v1/internal/controller"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/repository"
	"estate_portal_v1/internal/router"
	"estate_portal_v1/internal/service"
	"estate_portal_v1/internal/task"
	"estate_portal_v1/pkg/database"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// @title Estate Portal API
// @version 1.0
// @description 房产门户网关: 公开站点 + 管理后台，实体数据全部代理到上游 REST API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. 加载 .env (没有也不报错，直接用环境变量)
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用环境变量")
	}

	initJWT()

	// 1. 初始化本地会话库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers, &router.Config{
		SessionLoader: deps.Services.Auth,
		PreviewDir:    deps.PreviewDir,
	})

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	PreviewDir  string
}

// Repositories 仓库集合
type Repositories struct {
	Session *repository.SessionRepo
}

// Services 服务集合
type Services struct {
	Clients  *service.ClientFactory
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Search   *service.SearchService
	Content  *service.ContentService
	Taxonomy *service.TaxonomyService
	Lead     *service.LeadService
	Upload   *service.UploadService
}

// ==================== 初始化函数 ====================

// initJWT 从环境变量装配会话 JWT 配置
func initJWT() {
	cfg := middleware.DefaultJWTConfig()
	if secret := getEnv("JWT_SECRET", ""); secret != "" {
		cfg.SecretKey = secret
	}
	if ttl := getEnv("SESSION_TTL_HOURS", ""); ttl != "" {
		if d, err := time.ParseDuration(ttl + "h"); err == nil {
			cfg.SessionTTL = d
		}
	}
	middleware.SetJWTConfig(cfg)
}

// initDatabase 初始化本地会话库 (实体数据都在上游，这里只存会话)
func initDatabase() *gorm.DB {
	return database.InitDB(
		getEnv("SESSION_DB_PATH", "data/sessions.db"),
		&model.AdminSession{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Session: repository.NewSessionRepo(db),
	}

	// -------- 上游客户端 --------
	publicBase := getEnv("PUBLIC_API_BASE_URL", "http://localhost:8000/api/")
	adminBase := getEnv("ADMIN_API_BASE_URL", "http://localhost:8000/api/admin/")
	clients := service.NewClientFactory(publicBase, adminBase, repos.Session)

	previewDir := getEnv("PREVIEW_DIR", "data/previews")

	// -------- 业务服务 --------
	services := &Services{
		Clients: clients,
		Auth:    service.NewAuthService(repos.Session, clients),
		Catalog: service.NewCatalogService(clients),
		Upload:  service.NewUploadService(clients, previewDir),
	}
	services.Search = service.NewSearchService(services.Catalog)
	services.Content = service.NewContentService(clients)
	services.Taxonomy = service.NewTaxonomyService(clients)
	services.Lead = service.NewLeadService(clients)

	// -------- Controller 层 --------
	controllers := initControllers(services)

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		PreviewDir:  previewDir,
	}
}

// initControllers 初始化所有控制器
func initControllers(svc *Services) *router.Controllers {
	return &router.Controllers{
		Auth:      controller.NewAuthController(svc.Auth),
		Property:  controller.NewPropertyController(svc.Catalog),
		Compound:  controller.NewCompoundController(svc.Catalog),
		Developer: controller.NewDeveloperController(svc.Catalog),
		Search:    controller.NewSearchController(svc.Search),
		Content:   controller.NewContentController(svc.Content),
		Taxonomy:  controller.NewTaxonomyController(svc.Taxonomy),
		Lead:      controller.NewLeadController(svc.Lead),
		Upload:    controller.NewUploadController(svc.Upload),
		Entity:    controller.NewEntityController(svc.Catalog),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 公共缓存预热
	cacheTask := task.NewCacheTask(deps.Services.Catalog)
	cacheTask.Start()

	// 过期会话清理
	sessionTask := task.NewSessionTask(deps.Repos.Session)
	sessionTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

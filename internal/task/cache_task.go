package task

import (
	"context"
	"log"
	"time"

	"estate_portal_v1/internal/service"

	"github.com/robfig/cron/v3"
)

// CacheTask 公共缓存预热任务
// 精选房源 / 新盘速递走缓存，定时刷一遍避免首个访客吃冷启动延迟
type CacheTask struct {
	CatalogService *service.CatalogService
	Cron           *cron.Cron
}

func NewCacheTask(catalogService *service.CatalogService) *CacheTask {
	return &CacheTask{
		CatalogService: catalogService,
		Cron:           cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *CacheTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次缓存预热...")
		t.warmJob(ctx)
	}()

	// 每4分钟刷一次，略早于缓存 TTL (5分钟)，保证热数据不落空
	_, err := t.Cron.AddFunc("0 0/4 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.warmJob(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动缓存预热定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("缓存预热任务已启动 (每4分钟刷新一次)")
}

func (t *CacheTask) warmJob(ctx context.Context) {
	if err := t.CatalogService.WarmCache(ctx); err != nil {
		log.Printf("[Cron] 缓存预热失败: %v", err)
		return
	}
	log.Println("[Cron] 缓存预热完成")
}

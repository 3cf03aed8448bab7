package task

import (
	"context"
	"log"
	"time"

	"estate_portal_v1/internal/repository"

	"github.com/robfig/cron/v3"
)

// SessionTask 过期会话清理任务
// 管理端会话落在本地 sqlite，过期和已作废的行定时扫掉
type SessionTask struct {
	SessionRepo *repository.SessionRepo
	Cron        *cron.Cron
}

func NewSessionTask(sessionRepo *repository.SessionRepo) *SessionTask {
	return &SessionTask{
		SessionRepo: sessionRepo,
		Cron:        cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
func (t *SessionTask) Start() {
	// 每小时清一次
	_, err := t.Cron.AddFunc("0 0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.purgeJob(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动会话清理定时任务: %v", err)
	}

	t.Cron.Start()
	log.Println("会话清理任务已启动 (每小时执行一次)")
}

func (t *SessionTask) purgeJob(ctx context.Context) {
	n, err := t.SessionRepo.PurgeExpired(ctx, time.Now())
	if err != nil {
		log.Printf("[Cron] 会话清理失败: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[Cron] 已清理 %d 条过期会话", n)
	}
}

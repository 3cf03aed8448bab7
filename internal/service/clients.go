package service

import (
	"context"
	"log"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/repository"
)

// ==================== 客户端工厂 ====================

// ClientFactory 按会话构造上游客户端
// public 客户端全局一个；admin 客户端每个会话一个，绑定该会话的上游 Token，
// 并注册统一的 401 处理: 作废本地会话
type ClientFactory struct {
	publicBase string
	adminBase  string

	public      *client.Client
	sessionRepo *repository.SessionRepo
}

// NewClientFactory 创建客户端工厂
func NewClientFactory(publicBase, adminBase string, sessionRepo *repository.SessionRepo) *ClientFactory {
	return &ClientFactory{
		publicBase:  publicBase,
		adminBase:   adminBase,
		public:      client.NewPublic(publicBase),
		sessionRepo: sessionRepo,
	}
}

// Public 公开接口客户端
func (f *ClientFactory) Public() *client.Client {
	return f.public
}

// AdminFor 为一个会话构造管理接口客户端
// 上游打回 401 说明 Token 已失效，本地无法恢复，直接作废会话
func (f *ClientFactory) AdminFor(session *model.AdminSession) *client.Client {
	sessionID := session.SessionID
	return client.NewAdmin(f.adminBase, session.UpstreamToken, func() {
		if err := f.sessionRepo.Revoke(context.Background(), sessionID); err != nil {
			log.Printf("[Auth] 作废会话失败 session=%s: %v", sessionID, err)
		} else {
			log.Printf("[Auth] 上游 Token 失效，会话已作废 session=%s", sessionID)
		}
	})
}

// Bare 不带 Token 的管理域客户端 (登录用)
func (f *ClientFactory) Bare() *client.Client {
	return client.NewPublic(f.publicBase)
}

package service

import (
	"context"
	"net/url"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
)

// ==================== LeadService 联系留资 ====================

// LeadService 联系表单
// 公开端只写 (提交表单)，管理端只读 + 删除
type LeadService struct {
	clients *ClientFactory
}

// NewLeadService 创建留资服务
func NewLeadService(clients *ClientFactory) *LeadService {
	return &LeadService{clients: clients}
}

// Submit 公开提交联系表单
func (s *LeadService) Submit(ctx context.Context, sub *model.ContactSubmission) (*model.ContactSubmission, error) {
	return client.Create[model.ContactSubmission](ctx, s.clients.Public(),
		client.KindContact.ListPath(), sub)
}

// List 管理端留资列表
func (s *LeadService) List(ctx context.Context, page, pageSize string) (*client.Page[model.ContactSubmission], error) {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return nil, ErrSessionExpired
	}

	q := url.Values{}
	setIf(q, "page", page)
	setIf(q, "page_size", pageSize)
	return client.List[model.ContactSubmission](ctx, s.clients.AdminFor(session),
		client.KindContact.ListPath(), q)
}

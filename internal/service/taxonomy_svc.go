package service

import (
	"context"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
)

// ==================== TaxonomyService 字典数据 ====================

// TaxonomyService 区域/配套/合作品牌/客户评价
// 全是轻量字典表，公开读 + 管理端增改，删除统一走 CatalogService.DeleteEntity
type TaxonomyService struct {
	clients *ClientFactory
}

// NewTaxonomyService 创建字典服务
func NewTaxonomyService(clients *ClientFactory) *TaxonomyService {
	return &TaxonomyService{clients: clients}
}

func (s *TaxonomyService) adminClient(ctx context.Context) (*client.Client, error) {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return nil, ErrSessionExpired
	}
	return s.clients.AdminFor(session), nil
}

// ==================== 区域 ====================

func (s *TaxonomyService) GetLocations(ctx context.Context) (*client.Page[model.Location], error) {
	return client.List[model.Location](ctx, s.clients.Public(), client.KindLocation.ListPath(), nil)
}

func (s *TaxonomyService) CreateLocation(ctx context.Context, loc *model.Location) (*model.Location, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Location](ctx, admin, client.KindLocation.ListPath(), loc)
}

func (s *TaxonomyService) UpdateLocation(ctx context.Context, id int64, loc *model.Location) (*model.Location, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Update[model.Location](ctx, admin, client.KindLocation.DetailPath(id), loc)
}

// ==================== 配套设施 ====================

func (s *TaxonomyService) GetAmenities(ctx context.Context) (*client.Page[model.Amenity], error) {
	return client.List[model.Amenity](ctx, s.clients.Public(), client.KindAmenity.ListPath(), nil)
}

func (s *TaxonomyService) CreateAmenity(ctx context.Context, a *model.Amenity) (*model.Amenity, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Amenity](ctx, admin, client.KindAmenity.ListPath(), a)
}

func (s *TaxonomyService) UpdateAmenity(ctx context.Context, id int64, a *model.Amenity) (*model.Amenity, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Update[model.Amenity](ctx, admin, client.KindAmenity.DetailPath(id), a)
}

// ==================== 合作品牌 ====================

func (s *TaxonomyService) GetPartners(ctx context.Context) (*client.Page[model.Partner], error) {
	return client.List[model.Partner](ctx, s.clients.Public(), client.KindPartner.ListPath(), nil)
}

func (s *TaxonomyService) CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Partner](ctx, admin, client.KindPartner.ListPath(), p)
}

func (s *TaxonomyService) UpdatePartner(ctx context.Context, id int64, p *model.Partner) (*model.Partner, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Update[model.Partner](ctx, admin, client.KindPartner.DetailPath(id), p)
}

// ==================== 客户评价 ====================

func (s *TaxonomyService) GetTestimonials(ctx context.Context) (*client.Page[model.Testimonial], error) {
	return client.List[model.Testimonial](ctx, s.clients.Public(), client.KindTestimonial.ListPath(), nil)
}

func (s *TaxonomyService) CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Testimonial](ctx, admin, client.KindTestimonial.ListPath(), t)
}

func (s *TaxonomyService) UpdateTestimonial(ctx context.Context, id int64, t *model.Testimonial) (*model.Testimonial, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Update[model.Testimonial](ctx, admin, client.KindTestimonial.DetailPath(id), t)
}

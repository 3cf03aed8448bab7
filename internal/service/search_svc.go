package service

import (
	"context"
	"net/url"

	"estate_portal_v1/internal/api/dto"
	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/filter"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/pagination"
)

// ==================== SearchService 搜索 ====================

// SearchService 搜索页服务
// 上游一次性拉回楼盘集合，过滤谓词在本进程内存里执行 (与上游分页无关)，
// 然后按本地分页状态切窗口并生成页码令牌
type SearchService struct {
	catalog *CatalogService
}

// NewSearchService 创建搜索服务
func NewSearchService(catalog *CatalogService) *SearchService {
	return &SearchService{catalog: catalog}
}

// StateFromQuery 从查询串解析过滤状态
// 搜索词参数叫 q，其余与过滤键同名
func StateFromQuery(q url.Values) filter.State {
	return filter.State{
		Search:       q.Get("q"),
		Location:     q.Get("location"),
		Developer:    q.Get("developer"),
		MinPrice:     q.Get("minPrice"),
		MaxPrice:     q.Get("maxPrice"),
		DeliveryYear: q.Get("delivery"),
		Installments: q.Get("installments"),
	}
}

// Search 执行搜索
// 请求上下文结束后 (调用方已离开) 不再应用结果，直接丢弃
func (s *SearchService) Search(ctx context.Context, q url.Values) (*dto.SearchResponse, error) {
	page, err := s.catalog.GetCompounds(ctx, CompoundListFilter{PageSize: "1000"})
	if err != nil {
		return nil, err
	}

	// 晚到的结果不再应用 (对应组件卸载后丢弃响应)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	filtered := filter.Apply(page.Results, StateFromQuery(q))

	p := pagination.FromQuery(q).Clamp(len(filtered))
	window := pagination.Window(filtered, p)
	totalPages := p.TotalPages(len(filtered))

	return &dto.SearchResponse{
		Results:    window,
		Count:      len(filtered),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
		Tokens:     pagination.Tokens(p.Page, totalPages),
	}, nil
}

// SearchOptions 搜索页侧栏的下拉数据 (区域 + 开发商)
func (s *SearchService) SearchOptions(ctx context.Context) ([]model.Location, []model.Developer, error) {
	locations, err := client.List[model.Location](ctx, s.catalog.clients.Public(),
		client.KindLocation.ListPath(), nil)
	if err != nil {
		return nil, nil, err
	}

	developers, err := s.catalog.GetDevelopers(ctx, DeveloperListFilter{})
	if err != nil {
		return nil, nil, err
	}

	return locations.Results, developers.Results, nil
}

package service

import (
	"context"
	"net/url"
	"time"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/pkg/utils"
)

// ==================== 列表过滤参数 ====================

// PropertyListFilter 房源列表的查询参数
// 空值不会出现在发给上游的查询串里，让上游走默认 (不过滤) 行为
type PropertyListFilter struct {
	Location     string
	PropertyType string
	MinPrice     string
	MaxPrice     string
	MinArea      string
	MaxArea      string
	Bedrooms     string
	Bathrooms    string
	Compound     string
	Developer    string
	IsFeatured   string
	IsNewLaunch  string
	Search       string
	Slug         string
	Page         string
	PageSize     string
}

// Query 构建查询串，剔除空值
func (f PropertyListFilter) Query() url.Values {
	q := url.Values{}
	setIf(q, "location", f.Location)
	setIf(q, "property_type", f.PropertyType)
	setIf(q, "min_price", f.MinPrice)
	setIf(q, "max_price", f.MaxPrice)
	setIf(q, "min_area", f.MinArea)
	setIf(q, "max_area", f.MaxArea)
	setIf(q, "bedrooms", f.Bedrooms)
	setIf(q, "bathrooms", f.Bathrooms)
	setIf(q, "compound", f.Compound)
	setIf(q, "developer", f.Developer)
	setIf(q, "is_featured", f.IsFeatured)
	setIf(q, "is_new_launch", f.IsNewLaunch)
	setIf(q, "search", f.Search)
	setIf(q, "slug", f.Slug)
	setIf(q, "page", f.Page)
	setIf(q, "page_size", f.PageSize)
	return q
}

func setIf(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

// ==================== CatalogService 楼盘/房源/开发商 ====================

// 缓存键与 TTL (定时任务预热，过期懒刷新)
const (
	cacheKeyFeatured    = "properties:featured"
	cacheKeyNewLaunches = "properties:new-launches"
	catalogCacheTTL     = 5 * time.Minute
)

// CatalogService 目录服务: 房源、楼盘、开发商
// 所有数据的持久化都在上游，这里只做代理和少量公共缓存
type CatalogService struct {
	clients *ClientFactory
}

// NewCatalogService 创建目录服务
func NewCatalogService(clients *ClientFactory) *CatalogService {
	return &CatalogService{clients: clients}
}

// adminClient 取出请求上下文里的会话并构造上游管理客户端
func (s *CatalogService) adminClient(ctx context.Context) (*client.Client, error) {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return nil, ErrSessionExpired
	}
	return s.clients.AdminFor(session), nil
}

// ==================== 房源 ====================

// GetProperties 公开房源列表
func (s *CatalogService) GetProperties(ctx context.Context, f PropertyListFilter) (*client.Page[model.Property], error) {
	return client.List[model.Property](ctx, s.clients.Public(), client.KindProperty.ListPath(), f.Query())
}

// GetAdminProperties 管理端房源列表
func (s *CatalogService) GetAdminProperties(ctx context.Context, f PropertyListFilter) (*client.Page[model.Property], error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.List[model.Property](ctx, admin, client.KindProperty.ListPath(), f.Query())
}

// GetPropertyByID 房源详情
func (s *CatalogService) GetPropertyByID(ctx context.Context, id int64) (*model.Property, error) {
	return client.Get[model.Property](ctx, s.clients.Public(), client.KindProperty.DetailPath(id))
}

// GetPropertyBySlug 按 slug 查房源 (详情页规范 URL 用)
func (s *CatalogService) GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error) {
	page, err := client.List[model.Property](ctx, s.clients.Public(),
		client.KindProperty.ListPath(), PropertyListFilter{Slug: slug}.Query())
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, ErrNotFound
	}
	return &page.Results[0], nil
}

// CreateProperty 新建房源
func (s *CatalogService) CreateProperty(ctx context.Context, body any) (*model.Property, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Property](ctx, admin, client.KindProperty.ListPath(), body)
}

// UpdateProperty 更新房源 (PATCH，含文件的组合提交也走这里)
func (s *CatalogService) UpdateProperty(ctx context.Context, id int64, body any) (*model.Property, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Patch[model.Property](ctx, admin, client.KindProperty.DetailPath(id), body)
}

// GetFeaturedProperties 精选房源，带进程内缓存
func (s *CatalogService) GetFeaturedProperties(ctx context.Context) (*client.Page[model.Property], error) {
	if v, ok := utils.GetCache(cacheKeyFeatured); ok {
		return v.(*client.Page[model.Property]), nil
	}

	page, err := client.List[model.Property](ctx, s.clients.Public(),
		client.KindProperty.ListPath(), PropertyListFilter{IsFeatured: "true"}.Query())
	if err != nil {
		return nil, err
	}
	utils.SetCache(cacheKeyFeatured, page, catalogCacheTTL)
	return page, nil
}

// GetNewLaunches 新盘速递，带进程内缓存
func (s *CatalogService) GetNewLaunches(ctx context.Context) (*client.Page[model.Property], error) {
	if v, ok := utils.GetCache(cacheKeyNewLaunches); ok {
		return v.(*client.Page[model.Property]), nil
	}

	page, err := client.List[model.Property](ctx, s.clients.Public(),
		client.KindProperty.ListPath(), PropertyListFilter{IsNewLaunch: "true"}.Query())
	if err != nil {
		return nil, err
	}
	utils.SetCache(cacheKeyNewLaunches, page, catalogCacheTTL)
	return page, nil
}

// WarmCache 预热公共缓存 (定时任务调)
func (s *CatalogService) WarmCache(ctx context.Context) error {
	utils.DeleteCache(cacheKeyFeatured)
	utils.DeleteCache(cacheKeyNewLaunches)

	if _, err := s.GetFeaturedProperties(ctx); err != nil {
		return err
	}
	_, err := s.GetNewLaunches(ctx)
	return err
}

// ==================== 楼盘 ====================

// CompoundListFilter 楼盘列表查询参数
type CompoundListFilter struct {
	Developer string
	Location  string
	Search    string
	Page      string
	PageSize  string
}

func (f CompoundListFilter) Query() url.Values {
	q := url.Values{}
	setIf(q, "developer", f.Developer)
	setIf(q, "location", f.Location)
	setIf(q, "search", f.Search)
	setIf(q, "page", f.Page)
	setIf(q, "page_size", f.PageSize)
	return q
}

// GetCompounds 公开楼盘列表
func (s *CatalogService) GetCompounds(ctx context.Context, f CompoundListFilter) (*client.Page[model.Compound], error) {
	return client.List[model.Compound](ctx, s.clients.Public(), client.KindCompound.ListPath(), f.Query())
}

// GetAdminCompounds 管理端楼盘列表
func (s *CatalogService) GetAdminCompounds(ctx context.Context, f CompoundListFilter) (*client.Page[model.Compound], error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.List[model.Compound](ctx, admin, client.KindCompound.ListPath(), f.Query())
}

// GetCompoundByID 楼盘详情
func (s *CatalogService) GetCompoundByID(ctx context.Context, id int64) (*model.Compound, error) {
	return client.Get[model.Compound](ctx, s.clients.Public(), client.KindCompound.DetailPath(id))
}

// GetCompoundProperties 楼盘下的房源
func (s *CatalogService) GetCompoundProperties(ctx context.Context, id int64) (*client.Page[model.Property], error) {
	path := client.KindCompound.DetailPath(id) + "properties/"
	return client.List[model.Property](ctx, s.clients.Public(), path, nil)
}

// CreateCompound 新建楼盘
func (s *CatalogService) CreateCompound(ctx context.Context, body any) (*model.Compound, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Compound](ctx, admin, client.KindCompound.ListPath(), body)
}

// UpdateCompound 更新楼盘
func (s *CatalogService) UpdateCompound(ctx context.Context, id int64, body any) (*model.Compound, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Patch[model.Compound](ctx, admin, client.KindCompound.DetailPath(id), body)
}

// ==================== 开发商 ====================

// DeveloperListFilter 开发商列表查询参数
type DeveloperListFilter struct {
	Search   string
	Page     string
	PageSize string
}

func (f DeveloperListFilter) Query() url.Values {
	q := url.Values{}
	setIf(q, "search", f.Search)
	setIf(q, "page", f.Page)
	setIf(q, "page_size", f.PageSize)
	return q
}

// GetDevelopers 公开开发商列表
func (s *CatalogService) GetDevelopers(ctx context.Context, f DeveloperListFilter) (*client.Page[model.Developer], error) {
	return client.List[model.Developer](ctx, s.clients.Public(), client.KindDeveloper.ListPath(), f.Query())
}

// GetDeveloperByID 开发商详情
func (s *CatalogService) GetDeveloperByID(ctx context.Context, id int64) (*model.Developer, error) {
	return client.Get[model.Developer](ctx, s.clients.Public(), client.KindDeveloper.DetailPath(id))
}

// GetDeveloperCompounds 开发商旗下楼盘
func (s *CatalogService) GetDeveloperCompounds(ctx context.Context, id int64) (*client.Page[model.Compound], error) {
	path := client.KindDeveloper.DetailPath(id) + "compounds/"
	return client.List[model.Compound](ctx, s.clients.Public(), path, nil)
}

// CreateDeveloper 新建开发商
func (s *CatalogService) CreateDeveloper(ctx context.Context, body any) (*model.Developer, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Developer](ctx, admin, client.KindDeveloper.ListPath(), body)
}

// UpdateDeveloper 更新开发商
func (s *CatalogService) UpdateDeveloper(ctx context.Context, id int64, body any) (*model.Developer, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Patch[model.Developer](ctx, admin, client.KindDeveloper.DetailPath(id), body)
}

// ==================== 统一删除 ====================

// DeleteEntity 按实体类别 + ID 删除，全后台共用这一个入口
func (s *CatalogService) DeleteEntity(ctx context.Context, kind client.EntityKind, id int64) error {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return err
	}
	return client.Delete(ctx, admin, kind, id)
}

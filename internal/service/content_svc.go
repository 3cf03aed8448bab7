package service

import (
	"context"
	"net/url"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/richtext"
)

// ==================== ContentService 博客内容 ====================

// BlogListFilter 博文列表查询参数
type BlogListFilter struct {
	Author   string
	Status   string // Published / Draft
	Search   string
	Slug     string
	Page     string
	PageSize string
}

func (f BlogListFilter) Query() url.Values {
	q := url.Values{}
	setIf(q, "author", f.Author)
	setIf(q, "status", f.Status)
	setIf(q, "search", f.Search)
	setIf(q, "slug", f.Slug)
	setIf(q, "page", f.Page)
	setIf(q, "page_size", f.PageSize)
	return q
}

// ContentService 博客与作者
type ContentService struct {
	clients *ClientFactory
}

// NewContentService 创建内容服务
func NewContentService(clients *ClientFactory) *ContentService {
	return &ContentService{clients: clients}
}

func (s *ContentService) adminClient(ctx context.Context) (*client.Client, error) {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		return nil, ErrSessionExpired
	}
	return s.clients.AdminFor(session), nil
}

// ==================== 博文 ====================

// GetPosts 公开博文列表 (只给已发布的)
func (s *ContentService) GetPosts(ctx context.Context, f BlogListFilter) (*client.Page[model.BlogPost], error) {
	if f.Status == "" {
		f.Status = model.PostStatusPublished
	}
	return client.List[model.BlogPost](ctx, s.clients.Public(), client.KindBlogPost.ListPath(), f.Query())
}

// GetAdminPosts 管理端博文列表 (含草稿)
func (s *ContentService) GetAdminPosts(ctx context.Context, f BlogListFilter) (*client.Page[model.BlogPost], error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.List[model.BlogPost](ctx, admin, client.KindBlogPost.ListPath(), f.Query())
}

// GetPostBySlug 按 slug 查博文
func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	page, err := s.GetPosts(ctx, BlogListFilter{Slug: slug})
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, ErrNotFound
	}
	return &page.Results[0], nil
}

// GetPostByID 管理端博文详情
func (s *ContentService) GetPostByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Get[model.BlogPost](ctx, admin, client.KindBlogPost.DetailPath(id))
}

// CreatePost 新建博文
// 正文是富文本 HTML，先过一遍文档模型做归一化，把浏览器粘贴进来的杂散标签洗掉
func (s *ContentService) CreatePost(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	post.Content = normalizeRichText(post.Content)
	return client.Create[model.BlogPost](ctx, admin, client.KindBlogPost.ListPath(), post)
}

// UpdatePost 更新博文
func (s *ContentService) UpdatePost(ctx context.Context, id int64, post *model.BlogPost) (*model.BlogPost, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	post.Content = normalizeRichText(post.Content)
	return client.Update[model.BlogPost](ctx, admin, client.KindBlogPost.DetailPath(id), post)
}

// normalizeRichText 富文本归一化: 解析失败时原样保留，不吞内容
func normalizeRichText(content string) string {
	if content == "" {
		return content
	}
	doc, err := richtext.ParseHTML(content)
	if err != nil {
		return content
	}
	return richtext.RenderHTML(&doc)
}

// ==================== 作者 ====================

// GetAuthors 作者列表
func (s *ContentService) GetAuthors(ctx context.Context) (*client.Page[model.Author], error) {
	return client.List[model.Author](ctx, s.clients.Public(), client.KindAuthor.ListPath(), nil)
}

// CreateAuthor 新建作者
func (s *ContentService) CreateAuthor(ctx context.Context, author *model.Author) (*model.Author, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Create[model.Author](ctx, admin, client.KindAuthor.ListPath(), author)
}

// UpdateAuthor 更新作者
func (s *ContentService) UpdateAuthor(ctx context.Context, id int64, author *model.Author) (*model.Author, error) {
	admin, err := s.adminClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Update[model.Author](ctx, admin, client.KindAuthor.DetailPath(id), author)
}

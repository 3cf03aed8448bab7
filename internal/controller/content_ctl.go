package controller

import (
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	contentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// ==================== 博文公开接口 ====================

// GetPosts 博文列表
// @Summary 公开博文列表 (仅已发布)
// @Tags Blog
// @Param author query string false "作者ID"
// @Param search query string false "关键词搜索"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} map[string]interface{}
// @Router /api/blog-posts [get]
func (ctrl *ContentController) GetPosts(c *gin.Context) {
	f := service.BlogListFilter{
		Author:   c.Query("author"),
		Search:   c.Query("search"),
		Page:     c.Query("page"),
		PageSize: c.Query("page_size"),
	}

	page, err := ctrl.contentService.GetPosts(c.Request.Context(), f)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetPostBySlug 按 slug 查博文
// @Summary 按 slug 查博文
// @Tags Blog
// @Param slug path string true "slug"
// @Success 200 {object} map[string]interface{}
// @Router /api/blog-posts/slug/{slug} [get]
func (ctrl *ContentController) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 slug"})
		return
	}

	post, err := ctrl.contentService.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, post)
}

// GetAuthors 作者列表
// @Summary 作者列表
// @Tags Blog
// @Success 200 {object} map[string]interface{}
// @Router /api/authors [get]
func (ctrl *ContentController) GetAuthors(c *gin.Context) {
	page, err := ctrl.contentService.GetAuthors(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// ==================== 博文管理接口 ====================

// GetAdminPosts 管理端博文列表
// @Summary 管理端博文列表 (含草稿)
// @Tags Blog
// @Security BearerAuth
// @Param status query string false "状态筛选 Published/Draft"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/blog-posts [get]
func (ctrl *ContentController) GetAdminPosts(c *gin.Context) {
	f := service.BlogListFilter{
		Author:   c.Query("author"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     c.Query("page"),
		PageSize: c.Query("page_size"),
	}

	page, err := ctrl.contentService.GetAdminPosts(c.Request.Context(), f)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetAdminPost 管理端博文详情
// @Summary 管理端博文详情
// @Tags Blog
// @Security BearerAuth
// @Param id path int true "博文ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/blog-posts/{id} [get]
func (ctrl *ContentController) GetAdminPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := ctrl.contentService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, post)
}

// CreatePost 新建博文
// @Summary 新建博文 (正文富文本先归一化)
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/blog-posts [post]
func (ctrl *ContentController) CreatePost(c *gin.Context) {
	var post model.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.contentService.CreatePost(c.Request.Context(), &post)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// UpdatePost 更新博文
// @Summary 更新博文
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Param id path int true "博文ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/blog-posts/{id} [put]
func (ctrl *ContentController) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var post model.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	updated, err := ctrl.contentService.UpdatePost(c.Request.Context(), id, &post)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, updated)
}

// ==================== 作者管理接口 ====================

// CreateAuthor 新建作者
// @Summary 新建作者
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/authors [post]
func (ctrl *ContentController) CreateAuthor(c *gin.Context) {
	var author model.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.contentService.CreateAuthor(c.Request.Context(), &author)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// UpdateAuthor 更新作者
// @Summary 更新作者
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Param id path int true "作者ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/authors/{id} [put]
func (ctrl *ContentController) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var author model.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	updated, err := ctrl.contentService.UpdateAuthor(c.Request.Context(), id, &author)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, updated)
}

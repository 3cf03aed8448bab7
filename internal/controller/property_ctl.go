package controller

import (
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	catalogService *service.CatalogService
}

func NewPropertyController(catalogService *service.CatalogService) *PropertyController {
	return &PropertyController{catalogService: catalogService}
}

func propertyFilterFromQuery(c *gin.Context) service.PropertyListFilter {
	return service.PropertyListFilter{
		Location:     c.Query("location"),
		PropertyType: c.Query("property_type"),
		MinPrice:     c.Query("min_price"),
		MaxPrice:     c.Query("max_price"),
		MinArea:      c.Query("min_area"),
		MaxArea:      c.Query("max_area"),
		Bedrooms:     c.Query("bedrooms"),
		Bathrooms:    c.Query("bathrooms"),
		Compound:     c.Query("compound"),
		Developer:    c.Query("developer"),
		IsFeatured:   c.Query("is_featured"),
		IsNewLaunch:  c.Query("is_new_launch"),
		Search:       c.Query("search"),
		Page:         c.Query("page"),
		PageSize:     c.Query("page_size"),
	}
}

// ==================== 公开接口 ====================

// GetProperties 房源列表
// @Summary 公开房源列表
// @Tags Property
// @Param location query string false "区域"
// @Param property_type query string false "房源类型"
// @Param min_price query string false "最低价"
// @Param max_price query string false "最高价"
// @Param search query string false "关键词搜索"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} map[string]interface{}
// @Router /api/properties [get]
func (ctrl *PropertyController) GetProperties(c *gin.Context) {
	page, err := ctrl.catalogService.GetProperties(c.Request.Context(), propertyFilterFromQuery(c))
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetFeatured 精选房源
// @Summary 精选房源 (带缓存)
// @Tags Property
// @Success 200 {object} map[string]interface{}
// @Router /api/properties/featured [get]
func (ctrl *PropertyController) GetFeatured(c *gin.Context) {
	page, err := ctrl.catalogService.GetFeaturedProperties(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetNewLaunches 新盘速递
// @Summary 新盘速递 (带缓存)
// @Tags Property
// @Success 200 {object} map[string]interface{}
// @Router /api/properties/new-launches [get]
func (ctrl *PropertyController) GetNewLaunches(c *gin.Context) {
	page, err := ctrl.catalogService.GetNewLaunches(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetProperty 房源详情
// @Summary 房源详情
// @Tags Property
// @Param id path int true "房源ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/properties/{id} [get]
func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	property, err := ctrl.catalogService.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, property)
}

// GetPropertyBySlug 按 slug 查房源
// @Summary 按 slug 查房源 (详情页规范 URL)
// @Tags Property
// @Param slug path string true "slug"
// @Success 200 {object} map[string]interface{}
// @Router /api/properties/slug/{slug} [get]
func (ctrl *PropertyController) GetPropertyBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 slug"})
		return
	}

	property, err := ctrl.catalogService.GetPropertyBySlug(c.Request.Context(), slug)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, property)
}

// ==================== 管理接口 ====================

// GetAdminProperties 管理端房源列表
// @Summary 管理端房源列表
// @Tags Property
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/properties [get]
func (ctrl *PropertyController) GetAdminProperties(c *gin.Context) {
	page, err := ctrl.catalogService.GetAdminProperties(c.Request.Context(), propertyFilterFromQuery(c))
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// CreateProperty 新建房源
// @Summary 新建房源 (字段原样透传上游)
// @Tags Property
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/properties [post]
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	property, err := ctrl.catalogService.CreateProperty(c.Request.Context(), body)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, property)
}

// UpdateProperty 更新房源
// @Summary 更新房源 (部分字段)
// @Tags Property
// @Security BearerAuth
// @Accept json
// @Param id path int true "房源ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/properties/{id} [patch]
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	property, err := ctrl.catalogService.UpdateProperty(c.Request.Context(), id, body)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, property)
}

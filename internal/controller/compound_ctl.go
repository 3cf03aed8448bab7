package controller

import (
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type CompoundController struct {
	catalogService *service.CatalogService
}

func NewCompoundController(catalogService *service.CatalogService) *CompoundController {
	return &CompoundController{catalogService: catalogService}
}

func compoundFilterFromQuery(c *gin.Context) service.CompoundListFilter {
	return service.CompoundListFilter{
		Developer: c.Query("developer"),
		Location:  c.Query("location"),
		Search:    c.Query("search"),
		Page:      c.Query("page"),
		PageSize:  c.Query("page_size"),
	}
}

// ==================== 公开接口 ====================

// GetCompounds 楼盘列表
// @Summary 公开楼盘列表
// @Tags Compound
// @Param developer query string false "开发商ID"
// @Param location query string false "区域ID"
// @Param search query string false "关键词搜索"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} map[string]interface{}
// @Router /api/compounds [get]
func (ctrl *CompoundController) GetCompounds(c *gin.Context) {
	page, err := ctrl.catalogService.GetCompounds(c.Request.Context(), compoundFilterFromQuery(c))
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetCompound 楼盘详情
// @Summary 楼盘详情
// @Tags Compound
// @Param id path int true "楼盘ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/compounds/{id} [get]
func (ctrl *CompoundController) GetCompound(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	compound, err := ctrl.catalogService.GetCompoundByID(c.Request.Context(), id)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, compound)
}

// GetCompoundProperties 楼盘下的房源
// @Summary 楼盘下的房源列表
// @Tags Compound
// @Param id path int true "楼盘ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/compounds/{id}/properties [get]
func (ctrl *CompoundController) GetCompoundProperties(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	page, err := ctrl.catalogService.GetCompoundProperties(c.Request.Context(), id)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// ==================== 管理接口 ====================

// GetAdminCompounds 管理端楼盘列表
// @Summary 管理端楼盘列表
// @Tags Compound
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/compounds [get]
func (ctrl *CompoundController) GetAdminCompounds(c *gin.Context) {
	page, err := ctrl.catalogService.GetAdminCompounds(c.Request.Context(), compoundFilterFromQuery(c))
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// CreateCompound 新建楼盘
// @Summary 新建楼盘
// @Tags Compound
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/compounds [post]
func (ctrl *CompoundController) CreateCompound(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	compound, err := ctrl.catalogService.CreateCompound(c.Request.Context(), body)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, compound)
}

// UpdateCompound 更新楼盘
// @Summary 更新楼盘 (部分字段)
// @Tags Compound
// @Security BearerAuth
// @Accept json
// @Param id path int true "楼盘ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/compounds/{id} [patch]
func (ctrl *CompoundController) UpdateCompound(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	compound, err := ctrl.catalogService.UpdateCompound(c.Request.Context(), id, body)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, compound)
}

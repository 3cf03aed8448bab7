package controller

import (
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type DeveloperController struct {
	catalogService *service.CatalogService
}

func NewDeveloperController(catalogService *service.CatalogService) *DeveloperController {
	return &DeveloperController{catalogService: catalogService}
}

// GetDevelopers 开发商列表
// @Summary 公开开发商列表
// @Tags Developer
// @Param search query string false "关键词搜索"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} map[string]interface{}
// @Router /api/developers [get]
func (ctrl *DeveloperController) GetDevelopers(c *gin.Context) {
	f := service.DeveloperListFilter{
		Search:   c.Query("search"),
		Page:     c.Query("page"),
		PageSize: c.Query("page_size"),
	}

	page, err := ctrl.catalogService.GetDevelopers(c.Request.Context(), f)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// GetDeveloper 开发商详情
// @Summary 开发商详情
// @Tags Developer
// @Param id path int true "开发商ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/developers/{id} [get]
func (ctrl *DeveloperController) GetDeveloper(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	developer, err := ctrl.catalogService.GetDeveloperByID(c.Request.Context(), id)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, developer)
}

// GetDeveloperCompounds 开发商旗下楼盘
// @Summary 开发商旗下楼盘列表
// @Tags Developer
// @Param id path int true "开发商ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/developers/{id}/compounds [get]
func (ctrl *DeveloperController) GetDeveloperCompounds(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	page, err := ctrl.catalogService.GetDeveloperCompounds(c.Request.Context(), id)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// ==================== 管理接口 ====================

// CreateDeveloper 新建开发商
// @Summary 新建开发商
// @Tags Developer
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/developers [post]
func (ctrl *DeveloperController) CreateDeveloper(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	developer, err := ctrl.catalogService.CreateDeveloper(c.Request.Context(), body)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, developer)
}

// UpdateDeveloper 更新开发商
// @Summary 更新开发商 (部分字段)
// @Tags Developer
// @Security BearerAuth
// @Accept json
// @Param id path int true "开发商ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/developers/{id} [patch]
func (ctrl *DeveloperController) UpdateDeveloper(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	developer, err := ctrl.catalogService.UpdateDeveloper(c.Request.Context(), id, body)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, developer)
}

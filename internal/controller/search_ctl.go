package controller

import (
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	searchService *service.SearchService
}

func NewSearchController(searchService *service.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// Search 楼盘搜索
// @Summary 搜索楼盘: 内存过滤 + 本地分页 + 页码令牌
// @Tags Search
// @Param q query string false "关键词 (楼盘/区域/开发商名，子串匹配)"
// @Param location query string false "区域名，all-locations 表示不过滤"
// @Param developer query string false "开发商名，all-developers 表示不过滤"
// @Param minPrice query string false "最低价"
// @Param maxPrice query string false "最高价"
// @Param delivery query string false "交付年份，any 表示不过滤"
// @Param installments query string false "最低分期年数"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} dto.SearchResponse
// @Router /api/search [get]
func (ctrl *SearchController) Search(c *gin.Context) {
	resp, err := ctrl.searchService.Search(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, resp)
}

// SearchOptions 搜索页下拉选项
// @Summary 搜索页的区域与开发商下拉数据
// @Tags Search
// @Success 200 {object} map[string]interface{}
// @Router /api/search/options [get]
func (ctrl *SearchController) SearchOptions(c *gin.Context) {
	locations, developers, err := ctrl.searchService.SearchOptions(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"locations":  locations,
			"developers": developers,
		},
	})
}

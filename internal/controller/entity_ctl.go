package controller

import (
	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

// EntityController 跨实体的通用管理操作
// 删除不再每个页面写一份，统一按实体类别 + ID 走这一个入口
type EntityController struct {
	catalogService *service.CatalogService
}

func NewEntityController(catalogService *service.CatalogService) *EntityController {
	return &EntityController{catalogService: catalogService}
}

// DeleteEntity 统一删除
// @Summary 按实体类别删除一条记录
// @Tags Entity
// @Security BearerAuth
// @Param entity path string true "实体类别 (properties/compounds/developers/blog-posts/locations/amenities/authors/partners/testimonials/contact-submissions)"
// @Param id path int true "记录ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/{entity}/{id} [delete]
func (ctrl *EntityController) DeleteEntity(c *gin.Context) {
	kind, err := client.ParseKind(c.Param("entity"))
	if err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的实体类别: " + c.Param("entity")})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteEntity(c.Request.Context(), kind, id); err != nil {
		replyErr(c, err)
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success"})
}

package controller

import (
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxonomyController struct {
	taxonomyService *service.TaxonomyService
}

func NewTaxonomyController(taxonomyService *service.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

// ==================== 区域 ====================

// GetLocations 区域列表
// @Summary 区域列表
// @Tags Taxonomy
// @Success 200 {object} map[string]interface{}
// @Router /api/locations [get]
func (ctrl *TaxonomyController) GetLocations(c *gin.Context) {
	page, err := ctrl.taxonomyService.GetLocations(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// CreateLocation 新建区域
// @Summary 新建区域
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/locations [post]
func (ctrl *TaxonomyController) CreateLocation(c *gin.Context) {
	var loc model.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.taxonomyService.CreateLocation(c.Request.Context(), &loc)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// UpdateLocation 更新区域
// @Summary 更新区域
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Param id path int true "区域ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/locations/{id} [put]
func (ctrl *TaxonomyController) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var loc model.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	updated, err := ctrl.taxonomyService.UpdateLocation(c.Request.Context(), id, &loc)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, updated)
}

// ==================== 配套设施 ====================

// GetAmenities 配套设施列表
// @Summary 配套设施列表
// @Tags Taxonomy
// @Success 200 {object} map[string]interface{}
// @Router /api/amenities [get]
func (ctrl *TaxonomyController) GetAmenities(c *gin.Context) {
	page, err := ctrl.taxonomyService.GetAmenities(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// CreateAmenity 新建配套设施
// @Summary 新建配套设施
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/amenities [post]
func (ctrl *TaxonomyController) CreateAmenity(c *gin.Context) {
	var a model.Amenity
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.taxonomyService.CreateAmenity(c.Request.Context(), &a)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// UpdateAmenity 更新配套设施
// @Summary 更新配套设施
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Param id path int true "配套ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/amenities/{id} [put]
func (ctrl *TaxonomyController) UpdateAmenity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var a model.Amenity
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	updated, err := ctrl.taxonomyService.UpdateAmenity(c.Request.Context(), id, &a)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, updated)
}

// ==================== 合作品牌 / 客户评价 ====================

// GetPartners 合作品牌列表
// @Summary 合作品牌列表
// @Tags Taxonomy
// @Success 200 {object} map[string]interface{}
// @Router /api/partners [get]
func (ctrl *TaxonomyController) GetPartners(c *gin.Context) {
	page, err := ctrl.taxonomyService.GetPartners(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// CreatePartner 新建合作品牌
// @Summary 新建合作品牌
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/partners [post]
func (ctrl *TaxonomyController) CreatePartner(c *gin.Context) {
	var p model.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.taxonomyService.CreatePartner(c.Request.Context(), &p)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// UpdatePartner 更新合作品牌
// @Summary 更新合作品牌
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Param id path int true "品牌ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/partners/{id} [put]
func (ctrl *TaxonomyController) UpdatePartner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var p model.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	updated, err := ctrl.taxonomyService.UpdatePartner(c.Request.Context(), id, &p)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, updated)
}

// GetTestimonials 客户评价列表
// @Summary 客户评价列表
// @Tags Taxonomy
// @Success 200 {object} map[string]interface{}
// @Router /api/testimonials [get]
func (ctrl *TaxonomyController) GetTestimonials(c *gin.Context) {
	page, err := ctrl.taxonomyService.GetTestimonials(c.Request.Context())
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

// CreateTestimonial 新建客户评价
// @Summary 新建客户评价
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/testimonials [post]
func (ctrl *TaxonomyController) CreateTestimonial(c *gin.Context) {
	var t model.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.taxonomyService.CreateTestimonial(c.Request.Context(), &t)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// UpdateTestimonial 更新客户评价
// @Summary 更新客户评价
// @Tags Taxonomy
// @Security BearerAuth
// @Accept json
// @Param id path int true "评价ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/testimonials/{id} [put]
func (ctrl *TaxonomyController) UpdateTestimonial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var t model.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	updated, err := ctrl.taxonomyService.UpdateTestimonial(c.Request.Context(), id, &t)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, updated)
}

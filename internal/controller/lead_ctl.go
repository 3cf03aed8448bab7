package controller

import (
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type LeadController struct {
	leadService *service.LeadService
}

func NewLeadController(leadService *service.LeadService) *LeadController {
	return &LeadController{leadService: leadService}
}

// SubmitContact 提交联系表单
// @Summary 公开提交联系表单
// @Tags Lead
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/contact-submissions [post]
func (ctrl *LeadController) SubmitContact(c *gin.Context) {
	var sub model.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	created, err := ctrl.leadService.Submit(c.Request.Context(), &sub)
	if err != nil {
		replyErr(c, err)
		return
	}
	replyData(c, created)
}

// GetContacts 管理端留资列表
// @Summary 管理端联系表单列表
// @Tags Lead
// @Security BearerAuth
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/contact-submissions [get]
func (ctrl *LeadController) GetContacts(c *gin.Context) {
	page, err := ctrl.leadService.List(c.Request.Context(), c.Query("page"), c.Query("page_size"))
	if err != nil {
		replyErr(c, err)
		return
	}
	replyPage(c, page)
}

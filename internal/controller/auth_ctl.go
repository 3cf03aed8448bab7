package controller

import (
	"estate_portal_v1/internal/api/dto"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login 管理员登录
// @Summary 管理员登录，凭证透传上游换取会话
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录参数"
// @Success 200 {object} dto.LoginResponse
// @Router /api/admin/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		replyErr(c, err)
		return
	}

	replyData(c, resp)
}

// Logout 登出
// @Summary 登出，作废本地会话
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(401, gin.H{"code": 401, "message": "未登录"})
		return
	}

	if err := ctrl.authService.Logout(c.Request.Context(), sessionID); err != nil {
		replyErr(c, err)
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success"})
}

// Me 当前登录用户
// @Summary 透传上游校验会话并返回当前用户
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		c.JSON(401, gin.H{"code": 401, "message": "会话已过期，请重新登录"})
		return
	}

	user, err := ctrl.authService.Verify(ctx, session)
	if err != nil {
		replyErr(c, err)
		return
	}

	replyData(c, user)
}

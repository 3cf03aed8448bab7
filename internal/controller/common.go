package controller

import (
	"errors"
	"strconv"

	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/service"

	"github.com/gin-gonic/gin"
)

// ==================== 公共辅助 ====================

// replyErr 服务层错误到 HTTP 响应的统一映射
// 上游错误把状态码和响应体原样透传，本地错误按类别给固定文案
func replyErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		c.JSON(401, gin.H{"code": 401, "message": "会话已过期，请重新登录"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(401, gin.H{"code": 401, "message": "用户名或密码错误"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(404, gin.H{"code": 404, "message": "资源不存在"})
	case errors.Is(err, service.ErrTooManyFiles):
		c.JSON(400, gin.H{"code": 400, "message": err.Error()})
	default:
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"code": apiErr.StatusCode, "message": apiErr.Body})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "请求失败: " + err.Error()})
	}
}

// parseID 解析路径里的数字 ID，非法时返回 false 且已写好 400 响应
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的ID"})
		return 0, false
	}
	return id, true
}

// replyPage 列表统一信封
func replyPage[T any](c *gin.Context, page *client.Page[T]) {
	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    page.Results,
		"total":   page.Count,
	})
}

// replyData 单对象统一信封
func replyData(c *gin.Context, data any) {
	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

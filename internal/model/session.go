package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminSession 管理端会话
// 登录成功后保存上游签发的 Token，本服务再签一个 JWT 给前端
// 这是整个系统唯一的本地持久化模型
type AdminSession struct {
	BaseModel

	// 会话唯一标识，写进 JWT 的 sid 声明
	SessionID string `gorm:"uniqueIndex;size:36;not null" json:"session_id"`

	// 上游 API 的 Token，所有 admin 请求都带它
	UpstreamToken string `gorm:"size:255;not null" json:"-"`

	Username string `gorm:"size:100;index" json:"username"`

	// 上游返回的用户信息原样落库，避免每次都打 auth/me/
	Profile datatypes.JSON `json:"profile"`

	// 过期时间，到期由定时任务清理
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`

	// 被上游 401 打掉后标记失效
	Revoked bool `gorm:"default:false" json:"revoked"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

// Alive 会话是否仍然可用
func (s *AdminSession) Alive(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}

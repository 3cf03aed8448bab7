package dto

import (
	"encoding/json"
	"time"
)

// LoginRequest 登录参数，凭证原样透传上游
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
// Token 是本服务签的 JWT，上游 Token 不下发
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      json.RawMessage `json:"user"`
}

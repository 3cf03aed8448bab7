package client

import (
	"context"
	"encoding/json"
)

// ==================== 鉴权接口 ====================

// LoginRequest 上游登录参数
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpstreamUser 上游用户信息
type UpstreamUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// LoginResponse 上游登录响应: Token + 用户信息
type LoginResponse struct {
	Token string       `json:"token"`
	User  UpstreamUser `json:"user"`
}

// Login 把凭证透传给上游换取 Token
// 密码校验完全发生在上游，本服务不做任何口令存储
func Login(ctx context.Context, c *Client, username, password string) (*LoginResponse, error) {
	return Create[LoginResponse](ctx, c, "auth/login/", LoginRequest{
		Username: username,
		Password: password,
	})
}

// Me 用当前 Token 拉取用户信息 (验证 Token 是否仍有效)
func Me(ctx context.Context, c *Client) (*UpstreamUser, json.RawMessage, error) {
	resp, err := c.R(ctx).Get("auth/me/")
	if err != nil {
		return nil, nil, err
	}
	if resp.IsError() {
		return nil, nil, c.fail(resp)
	}

	var user UpstreamUser
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, nil, err
	}
	return &user, json.RawMessage(resp.Body()), nil
}

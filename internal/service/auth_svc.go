package service

import (
	"context"
	"encoding/json"
	"time"

	"estate_portal_v1/internal/api/dto"
	"estate_portal_v1/internal/client"
	"estate_portal_v1/internal/middleware"
	"estate_portal_v1/internal/model"
	"estate_portal_v1/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ==================== AuthService 认证服务 ====================

// AuthService 认证服务
// 凭证校验完全发生在上游；本服务只保管上游 Token 并签发自己的会话 JWT
type AuthService struct {
	sessionRepo *repository.SessionRepo
	clients     *ClientFactory
}

// NewAuthService 创建认证服务
func NewAuthService(sessionRepo *repository.SessionRepo, clients *ClientFactory) *AuthService {
	return &AuthService{sessionRepo: sessionRepo, clients: clients}
}

// Login 登录: 凭证透传上游换 Token，本地落会话，返回 JWT
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	resp, err := client.Login(ctx, s.clients.Bare(), req.Username, req.Password)
	if err != nil {
		if client.IsUnauthorized(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	now := time.Now()

	profile, _ := json.Marshal(resp.User)
	session := &model.AdminSession{
		SessionID:     uuid.NewString(),
		UpstreamToken: resp.Token,
		Username:      resp.User.Username,
		Profile:       datatypes.JSON(profile),
		ExpiresAt:     now.Add(cfg.SessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := middleware.GenerateSessionToken(session.SessionID, session.Username)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      []byte(session.Profile),
	}, nil
}

// Logout 登出: 删除本地会话 (上游 Token 由上游自己过期)
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// LoadSession 供中间件加载会话
func (s *AuthService) LoadSession(ctx context.Context, sessionID string) (*model.AdminSession, error) {
	return s.sessionRepo.GetBySessionID(ctx, sessionID)
}

// Verify 用上游 auth/me/ 验证会话的 Token 仍然有效
func (s *AuthService) Verify(ctx context.Context, session *model.AdminSession) (*client.UpstreamUser, error) {
	user, _, err := client.Me(ctx, s.clients.AdminFor(session))
	if err != nil {
		if client.IsUnauthorized(err) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	return user, nil
}

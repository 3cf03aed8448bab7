package middleware

import (
	"context"
	"net/http"
	"time"

	"estate_portal_v1/internal/model"

	"github.com/gin-gonic/gin"
)

// ==================== 会话上下文 ====================

// sessionContextKey Key
type sessionContextKey struct{}

// WithSession 把会话注入 request context
// 上游 Token 通过这个显式的请求上下文对象传递，不走任何全局变量
func WithSession(ctx context.Context, s *model.AdminSession) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext 从 context 取会话
func SessionFromContext(ctx context.Context) *model.AdminSession {
	if s, ok := ctx.Value(sessionContextKey{}).(*model.AdminSession); ok {
		return s
	}
	return nil
}

// ==================== Gin 中间件 ====================

// SessionLoader 会话加载行为，由 auth 服务实现
type SessionLoader interface {
	LoadSession(ctx context.Context, sessionID string) (*model.AdminSession, error)
}

// SessionAuth 会话中间件，挂在 JWTAuth 之后
// 按 JWT 里的 sid 查会话；被上游 401 作废或已过期的会话一律拒绝，
// 前端收到 session expired 后引导重新登录
func SessionAuth(loader SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := GetSessionID(c)
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "会话缺失"})
			c.Abort()
			return
		}

		session, err := loader.LoadSession(c.Request.Context(), sessionID)
		if err != nil || !session.Alive(time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "session expired"})
			c.Abort()
			return
		}

		ctx := WithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

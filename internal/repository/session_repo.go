package repository

import (
	"context"
	"time"

	"estate_portal_v1/internal/model"

	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create 新建会话
func (r *SessionRepo) Create(ctx context.Context, session *model.AdminSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetBySessionID 按会话标识查询
func (r *SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.AdminSession, error) {
	var s model.AdminSession
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Revoke 作废会话 (上游 401 或主动登出)
func (r *SessionRepo) Revoke(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&model.AdminSession{}).
		Where("session_id = ?", sessionID).
		Update("revoked", true).Error
}

// Delete 删除会话
func (r *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.AdminSession{}).Error
}

// PurgeExpired 清理过期/已作废会话，返回清理条数
func (r *SessionRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR revoked = ?", now, true).
		Delete(&model.AdminSession{})
	return res.RowsAffected, res.Error
}

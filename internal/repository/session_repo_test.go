package repository

import (
	"context"
	"testing"
	"time"

	"estate_portal_v1/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSessionTestDB(t *testing.T) *SessionRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.AdminSession{})
	return NewSessionRepo(db)
}

func TestSessionCRUD(t *testing.T) {
	repo := setupSessionTestDB(t)
	ctx := context.Background()

	s := &model.AdminSession{
		SessionID:     "sid-1",
		UpstreamToken: "tok-1",
		Username:      "admin",
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	got, err := repo.GetBySessionID(ctx, "sid-1")
	if err != nil {
		t.Fatalf("查询会话失败: %v", err)
	}
	if got.UpstreamToken != "tok-1" || got.Username != "admin" {
		t.Errorf("会话字段错误: %+v", got)
	}
	if !got.Alive(time.Now()) {
		t.Error("未过期未作废的会话应为存活状态")
	}

	if err := repo.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("删除会话失败: %v", err)
	}
	if _, err := repo.GetBySessionID(ctx, "sid-1"); err == nil {
		t.Error("删除后不应再查到会话")
	}
}

func TestRevokeKillsSession(t *testing.T) {
	repo := setupSessionTestDB(t)
	ctx := context.Background()

	repo.Create(ctx, &model.AdminSession{
		SessionID: "sid-2", UpstreamToken: "t", ExpiresAt: time.Now().Add(time.Hour),
	})

	if err := repo.Revoke(ctx, "sid-2"); err != nil {
		t.Fatalf("作废会话失败: %v", err)
	}

	got, err := repo.GetBySessionID(ctx, "sid-2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Alive(time.Now()) {
		t.Error("已作废的会话不应为存活状态")
	}
}

func TestPurgeExpired(t *testing.T) {
	repo := setupSessionTestDB(t)
	ctx := context.Background()
	now := time.Now()

	// 过期、作废、存活各一条
	repo.Create(ctx, &model.AdminSession{SessionID: "expired", UpstreamToken: "t", ExpiresAt: now.Add(-time.Minute)})
	repo.Create(ctx, &model.AdminSession{SessionID: "revoked", UpstreamToken: "t", ExpiresAt: now.Add(time.Hour), Revoked: true})
	repo.Create(ctx, &model.AdminSession{SessionID: "alive", UpstreamToken: "t", ExpiresAt: now.Add(time.Hour)})

	n, err := repo.PurgeExpired(ctx, now)
	if err != nil {
		t.Fatalf("清理失败: %v", err)
	}
	if n != 2 {
		t.Errorf("应清理 2 条, got %d", n)
	}

	if _, err := repo.GetBySessionID(ctx, "alive"); err != nil {
		t.Error("存活会话不应被清理")
	}
	if _, err := repo.GetBySessionID(ctx, "expired"); err == nil {
		t.Error("过期会话应被清理")
	}
}

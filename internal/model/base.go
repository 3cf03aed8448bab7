package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 本地表的公共字段
// 注意: 业务实体 (房源/楼盘/博客等) 全部持久化在上游 API，本地只落会话这类运维数据
type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

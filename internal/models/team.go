package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team 团队表
// 编辑组，业绩按团队聚合展示，自身不持有任何统计状态。
type Team struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`    // 主键（UUID）
	Name      string    `gorm:"not null;index" json:"name"`      // 团队名称
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 创建时间
}

// TableName 指定表名
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate 创建前生成 UUID 主键
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

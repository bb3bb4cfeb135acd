package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmaker 博彩合作方表
// 通过 active=false 软删除，列表读取仅返回启用项；同时保留硬删除入口。
type Bookmaker struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"` // 主键（UUID）
	Name      string    `gorm:"not null;index" json:"name"`   // 品牌名称
	Active    bool      `gorm:"not null;default:true;index" json:"active"` // 是否启用
	CreatedAt time.Time `gorm:"index" json:"created_at"`      // 创建时间
}

// TableName 指定表名
func (Bookmaker) TableName() string {
	return "bookmakers"
}

// BeforeCreate 创建前生成 UUID 主键
func (b *Bookmaker) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

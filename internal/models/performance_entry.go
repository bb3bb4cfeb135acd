package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceEntry 业绩事实表（仅追加）
// 每行记录某日某归属主体在某合作方的获客指标。
// 归属主体为团队或 CM 档案二选一；date 为定宽 ISO 日期字符串，按字典序比较。
// 同一 (date, 主体, 合作方) 允许重复行，聚合时直接相加。
type PerformanceEntry struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`              // 主键（UUID）
	Date           string    `gorm:"not null;size:10;index" json:"date"`        // 业绩日期（YYYY-MM-DD）
	ProfileID      *string   `gorm:"size:36;index" json:"profile_id"`           // 归属 CM 档案（可空）
	TeamID         *string   `gorm:"size:36;index" json:"team_id"`              // 归属团队（可空）
	BookmakerID    string    `gorm:"not null;size:36;index" json:"bookmaker_id"` // 合作方
	LinkIdentifier *string   `gorm:"size:16" json:"link_identifier"`            // 获客方式 direct_link/promo_code（可空）
	Registrations  int       `gorm:"not null;default:0" json:"registrations"`   // 注册数
	Deposits       int       `gorm:"not null;default:0" json:"deposits"`        // 入金数
	Revenue        Money     `gorm:"type:decimal(14,2)" json:"revenue"`         // 收入
	NetRevenue     Money     `gorm:"type:decimal(14,2)" json:"net_revenue"`     // 净收入
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                   // 录入时间

	Profile   *Profile   `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`     // 关联档案（悬空引用时为空）
	Team      *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`           // 关联团队（悬空引用时为空）
	Bookmaker *Bookmaker `gorm:"foreignKey:BookmakerID" json:"bookmaker,omitempty"` // 关联合作方（悬空引用时为空）
}

// TableName 指定表名
func (PerformanceEntry) TableName() string {
	return "performance_entries"
}

// BeforeCreate 创建前生成 UUID 主键
func (e *PerformanceEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

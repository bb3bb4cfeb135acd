package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AffiliateLink 推广链接配置表
// 每个 (归属主体, 合作方) 组合至多一行，由事务内的 upsert 逻辑保证。
type AffiliateLink struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`                             // 主键（UUID）
	TeamID        *string   `gorm:"size:36;index:idx_affiliate_links_team" json:"team_id"`    // 归属团队（可空）
	ProfileID     *string   `gorm:"size:36;index:idx_affiliate_links_profile" json:"profile_id"` // 归属 CM 档案（可空）
	BookmakerID   string    `gorm:"not null;size:36;index" json:"bookmaker_id"`               // 合作方
	AffiliateLink *string   `json:"affiliate_link"`                                           // 推广链接（可空）
	PromoCode     *string   `gorm:"size:64" json:"promo_code"`                                // 推广码（可空）
	CreatedAt     time.Time `json:"created_at"`                                               // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                               // 更新时间

	Bookmaker *Bookmaker `gorm:"foreignKey:BookmakerID" json:"bookmaker,omitempty"` // 关联合作方
}

// TableName 指定表名
func (AffiliateLink) TableName() string {
	return "affiliate_links"
}

// BeforeCreate 创建前生成 UUID 主键
func (l *AffiliateLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

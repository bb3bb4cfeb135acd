package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile 人员档案表
// role 为 cm 的档案是独立获客渠道；admin/editor 档案仅为登录身份，不参与业绩统计。
type Profile struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`       // 主键（UUID）
	FullName       string    `gorm:"not null;index" json:"full_name"`    // 姓名
	Role           string    `gorm:"not null;index;size:16" json:"role"` // 角色 admin/editor/cm
	TeamID         *string   `gorm:"size:36;index" json:"team_id"`       // 所属团队（可空）
	YoutubeChannel *string   `json:"youtube_channel"`                    // YouTube 频道（可空）
	CreatedAt      time.Time `gorm:"index" json:"created_at"`            // 创建时间

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"` // 关联团队（悬空引用时为空）
}

// TableName 指定表名
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate 创建前生成 UUID 主键
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

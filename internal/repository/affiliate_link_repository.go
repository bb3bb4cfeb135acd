package repository

import (
	"errors"

	"github.com/afftrack-next/internal/models"

	"gorm.io/gorm"
)

// AffiliateLinkRepository 推广链接配置数据访问接口
type AffiliateLinkRepository interface {
	ListByEntity(filter AffiliateLinkEntityFilter) ([]models.AffiliateLink, error)
	GetByEntityAndBookmaker(filter AffiliateLinkEntityFilter, bookmakerID string) (*models.AffiliateLink, error)
	GetByID(id string) (*models.AffiliateLink, error)
	Create(link *models.AffiliateLink) error
	Update(link *models.AffiliateLink) error
	Delete(id string) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AffiliateLinkRepository
}

// GormAffiliateLinkRepository GORM 实现
type GormAffiliateLinkRepository struct {
	db *gorm.DB
}

// NewAffiliateLinkRepository 创建推广链接仓库
func NewAffiliateLinkRepository(db *gorm.DB) *GormAffiliateLinkRepository {
	return &GormAffiliateLinkRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAffiliateLinkRepository) WithTx(tx *gorm.DB) AffiliateLinkRepository {
	if tx == nil {
		return r
	}
	return &GormAffiliateLinkRepository{db: tx}
}

// Transaction 执行事务
func (r *GormAffiliateLinkRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByEntity 按归属主体获取链接配置（团队归属优先于个人归属）
func (r *GormAffiliateLinkRepository) ListByEntity(filter AffiliateLinkEntityFilter) ([]models.AffiliateLink, error) {
	links := make([]models.AffiliateLink, 0)
	query := r.db.Preload("Bookmaker")
	query = applyEntityFilter(query, filter)
	if err := query.Order("updated_at DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetByEntityAndBookmaker 获取某主体在某平台的链接配置
func (r *GormAffiliateLinkRepository) GetByEntityAndBookmaker(filter AffiliateLinkEntityFilter, bookmakerID string) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	query := applyEntityFilter(r.db, filter).Where("bookmaker_id = ?", bookmakerID)
	if err := query.First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// GetByID 根据 ID 获取链接配置
func (r *GormAffiliateLinkRepository) GetByID(id string) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	if err := r.db.Preload("Bookmaker").Where("id = ?", id).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// Create 创建链接配置
func (r *GormAffiliateLinkRepository) Create(link *models.AffiliateLink) error {
	return r.db.Create(link).Error
}

// Update 更新链接配置
func (r *GormAffiliateLinkRepository) Update(link *models.AffiliateLink) error {
	return r.db.Save(link).Error
}

// Delete 删除链接配置
func (r *GormAffiliateLinkRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.AffiliateLink{}).Error
}

func applyEntityFilter(query *gorm.DB, filter AffiliateLinkEntityFilter) *gorm.DB {
	if filter.TeamID != nil {
		return query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.ProfileID != nil {
		return query.Where("profile_id = ?", *filter.ProfileID)
	}
	// 无归属主体时返回空集，避免全表误配
	return query.Where("1 = 0")
}

package repository

import (
	"errors"

	"github.com/afftrack-next/internal/models"

	"gorm.io/gorm"
)

// BookmakerRepository 博彩平台数据访问接口
type BookmakerRepository interface {
	List(onlyActive bool) ([]models.Bookmaker, error)
	GetByID(id string) (*models.Bookmaker, error)
	Create(bookmaker *models.Bookmaker) error
	Deactivate(id string) (int64, error)
	Delete(id string) error
}

// GormBookmakerRepository GORM 实现
type GormBookmakerRepository struct {
	db *gorm.DB
}

// NewBookmakerRepository 创建平台仓库
func NewBookmakerRepository(db *gorm.DB) *GormBookmakerRepository {
	return &GormBookmakerRepository{db: db}
}

// List 平台列表（按名称升序）
func (r *GormBookmakerRepository) List(onlyActive bool) ([]models.Bookmaker, error) {
	bookmakers := make([]models.Bookmaker, 0)
	query := r.db.Order("name ASC")
	if onlyActive {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&bookmakers).Error; err != nil {
		return nil, err
	}
	return bookmakers, nil
}

// GetByID 根据 ID 获取平台
func (r *GormBookmakerRepository) GetByID(id string) (*models.Bookmaker, error) {
	var bookmaker models.Bookmaker
	if err := r.db.Where("id = ?", id).First(&bookmaker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmaker, nil
}

// Create 创建平台
func (r *GormBookmakerRepository) Create(bookmaker *models.Bookmaker) error {
	return r.db.Create(bookmaker).Error
}

// Deactivate 下线平台，保留历史记录
func (r *GormBookmakerRepository) Deactivate(id string) (int64, error) {
	result := r.db.Model(&models.Bookmaker{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete 删除平台
func (r *GormBookmakerRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Bookmaker{}).Error
}

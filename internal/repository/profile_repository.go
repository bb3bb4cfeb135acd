package repository

import (
	"errors"

	"github.com/afftrack-next/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository 人员档案数据访问接口
type ProfileRepository interface {
	List() ([]models.Profile, error)
	ListByRole(role string) ([]models.Profile, error)
	ListByTeam(teamID string) ([]models.Profile, error)
	GetByID(id string) (*models.Profile, error)
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	Delete(id string) error
}

// GormProfileRepository GORM 实现
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建档案仓库
func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// List 档案列表（按姓名升序）
func (r *GormProfileRepository) List() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := r.db.Preload("Team").Order("full_name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListByRole 按角色获取档案列表（按姓名升序）
func (r *GormProfileRepository) ListByRole(role string) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	err := r.db.Preload("Team").
		Where("role = ?", role).
		Order("full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListByTeam 获取团队成员档案
func (r *GormProfileRepository) ListByTeam(teamID string) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	err := r.db.Where("team_id = ?", teamID).
		Order("full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetByID 根据 ID 获取档案
func (r *GormProfileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Preload("Team").Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create 创建档案
func (r *GormProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update 更新档案
func (r *GormProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete 删除档案
func (r *GormProfileRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Profile{}).Error
}

package repository

import (
	"errors"

	"github.com/afftrack-next/internal/models"

	"gorm.io/gorm"
)

// TeamRepository 团队数据访问接口
type TeamRepository interface {
	List() ([]models.Team, error)
	GetByID(id string) (*models.Team, error)
	Create(team *models.Team) error
	Delete(id string) error
	CountMembers(teamID string) (int64, error)
}

// GormTeamRepository GORM 实现
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository 创建团队仓库
func NewTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// List 团队列表（按名称升序）
func (r *GormTeamRepository) List() ([]models.Team, error) {
	teams := make([]models.Team, 0)
	if err := r.db.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID 根据 ID 获取团队
func (r *GormTeamRepository) GetByID(id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// Create 创建团队
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// Delete 删除团队
func (r *GormTeamRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Team{}).Error
}

// CountMembers 统计团队成员数
func (r *GormTeamRepository) CountMembers(teamID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Profile{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

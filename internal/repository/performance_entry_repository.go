package repository

import (
	"strings"

	"github.com/afftrack-next/internal/models"

	"gorm.io/gorm"
)

// PerformanceEntryRepository 绩效记录数据访问接口
type PerformanceEntryRepository interface {
	List(filter PerformanceEntryListFilter) ([]models.PerformanceEntry, error)
	ListCompact(filter PerformanceEntryListFilter) ([]models.PerformanceEntry, error)
	ListRecent(limit int) ([]models.PerformanceEntry, error)
	Create(entry *models.PerformanceEntry) error
	Count() (int64, error)
}

// GormPerformanceEntryRepository GORM 实现
type GormPerformanceEntryRepository struct {
	db *gorm.DB
}

// NewPerformanceEntryRepository 创建绩效记录仓库
func NewPerformanceEntryRepository(db *gorm.DB) *GormPerformanceEntryRepository {
	return &GormPerformanceEntryRepository{db: db}
}

// List 绩效记录列表（日期倒序，同日按创建时间倒序）
func (r *GormPerformanceEntryRepository) List(filter PerformanceEntryListFilter) ([]models.PerformanceEntry, error) {
	entries := make([]models.PerformanceEntry, 0)

	query := r.db.Model(&models.PerformanceEntry{})
	if filter.WithJoins {
		query = query.Preload("Profile").Preload("Team").Preload("Bookmaker")
	}
	if startDate := strings.TrimSpace(filter.StartDate); startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate := strings.TrimSpace(filter.EndDate); endDate != "" {
		query = query.Where("date <= ?", endDate)
	}
	if filter.TeamID != "" {
		query = query.Where("team_id = ?", filter.TeamID)
	}
	if filter.ProfileID != "" {
		query = query.Where("profile_id = ?", filter.ProfileID)
	}
	if filter.BookmakerID != "" {
		query = query.Where("bookmaker_id = ?", filter.BookmakerID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRecent 最近录入的绩效记录
// 仅按录入时间倒序，与业绩日期无关；补录历史日期的记录同样排在最前
func (r *GormPerformanceEntryRepository) ListRecent(limit int) ([]models.PerformanceEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	entries := make([]models.PerformanceEntry, 0, limit)
	err := r.db.Model(&models.PerformanceEntry{}).
		Preload("Profile").Preload("Team").Preload("Bookmaker").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListCompact 仅取聚合所需字段的记录列表
func (r *GormPerformanceEntryRepository) ListCompact(filter PerformanceEntryListFilter) ([]models.PerformanceEntry, error) {
	filter.WithJoins = false
	entries := make([]models.PerformanceEntry, 0)

	query := r.db.Model(&models.PerformanceEntry{}).
		Select("id", "date", "profile_id", "team_id", "bookmaker_id", "link_identifier",
			"registrations", "deposits", "revenue", "net_revenue")
	if startDate := strings.TrimSpace(filter.StartDate); startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate := strings.TrimSpace(filter.EndDate); endDate != "" {
		query = query.Where("date <= ?", endDate)
	}
	if filter.TeamID != "" {
		query = query.Where("team_id = ?", filter.TeamID)
	}
	if filter.ProfileID != "" {
		query = query.Where("profile_id = ?", filter.ProfileID)
	}
	if filter.BookmakerID != "" {
		query = query.Where("bookmaker_id = ?", filter.BookmakerID)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Create 创建绩效记录
func (r *GormPerformanceEntryRepository) Create(entry *models.PerformanceEntry) error {
	return r.db.Create(entry).Error
}

// Count 统计绩效记录数量
func (r *GormPerformanceEntryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.PerformanceEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

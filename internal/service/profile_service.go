package service

import (
	"strings"

	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
)

// ProfileService 人员档案业务服务
type ProfileService struct {
	repo     repository.ProfileRepository
	teamRepo repository.TeamRepository
}

// NewProfileService 创建档案服务
func NewProfileService(repo repository.ProfileRepository, teamRepo repository.TeamRepository) *ProfileService {
	return &ProfileService{repo: repo, teamRepo: teamRepo}
}

// CreateProfileInput 创建档案输入
type CreateProfileInput struct {
	FullName       string
	Role           string
	TeamID         *string
	YoutubeChannel *string
}

// List 获取全部档案
func (s *ProfileService) List() ([]models.Profile, error) {
	return s.repo.List()
}

// ListCMs 获取社区管理员档案列表
func (s *ProfileService) ListCMs() ([]models.Profile, error) {
	return s.repo.ListByRole(constants.ProfileRoleCM)
}

// Get 获取单个档案
func (s *ProfileService) Get(id string) (*models.Profile, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Create 创建档案
func (s *ProfileService) Create(input CreateProfileInput) (*models.Profile, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, ErrNameRequired
	}

	role := strings.TrimSpace(input.Role)
	if !isValidProfileRole(role) {
		return nil, ErrInvalidRole
	}

	if input.TeamID != nil && strings.TrimSpace(*input.TeamID) != "" {
		team, err := s.teamRepo.GetByID(*input.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, ErrNotFound
		}
	}

	profile := models.Profile{
		FullName:       fullName,
		Role:           role,
		TeamID:         input.TeamID,
		YoutubeChannel: input.YoutubeChannel,
	}
	if err := s.repo.Create(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Delete 删除档案；既有绩效记录保留原始外键
func (s *ProfileService) Delete(id string) error {
	return s.repo.Delete(id)
}

func isValidProfileRole(role string) bool {
	for _, candidate := range constants.ProfileRoles() {
		if role == candidate {
			return true
		}
	}
	return false
}

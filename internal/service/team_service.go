package service

import (
	"strings"

	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
)

// TeamService 团队业务服务
type TeamService struct {
	repo repository.TeamRepository
}

// NewTeamService 创建团队服务
func NewTeamService(repo repository.TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// CreateTeamInput 创建团队输入
type CreateTeamInput struct {
	Name string
}

// TeamDetail 团队详情，带成员数量
type TeamDetail struct {
	models.Team
	MemberCount int64 `json:"member_count"`
}

// List 获取团队列表
func (s *TeamService) List() ([]models.Team, error) {
	return s.repo.List()
}

// Get 获取单个团队
func (s *TeamService) Get(id string) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	return team, nil
}

// Detail 获取团队详情；成员数按当前归属的档案统计
func (s *TeamService) Detail(id string) (*TeamDetail, error) {
	team, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.CountMembers(id)
	if err != nil {
		return nil, err
	}
	return &TeamDetail{Team: *team, MemberCount: members}, nil
}

// Create 创建团队
func (s *TeamService) Create(input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	team := models.Team{Name: name}
	if err := s.repo.Create(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

// Delete 删除团队；既有绩效记录保留原始外键
func (s *TeamService) Delete(id string) error {
	return s.repo.Delete(id)
}

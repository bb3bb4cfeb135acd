package service

import (
	"strings"

	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
)

// BookmakerService 博彩平台业务服务
type BookmakerService struct {
	repo repository.BookmakerRepository
}

// NewBookmakerService 创建平台服务
func NewBookmakerService(repo repository.BookmakerRepository) *BookmakerService {
	return &BookmakerService{repo: repo}
}

// CreateBookmakerInput 创建平台输入
type CreateBookmakerInput struct {
	Name string
}

// List 获取在线平台列表
func (s *BookmakerService) List() ([]models.Bookmaker, error) {
	return s.repo.List(true)
}

// ListAll 获取全部平台（含已下线）
func (s *BookmakerService) ListAll() ([]models.Bookmaker, error) {
	return s.repo.List(false)
}

// Get 获取单个平台
func (s *BookmakerService) Get(id string) (*models.Bookmaker, error) {
	bookmaker, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bookmaker == nil {
		return nil, ErrNotFound
	}
	return bookmaker, nil
}

// Create 创建平台
func (s *BookmakerService) Create(input CreateBookmakerInput) (*models.Bookmaker, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	bookmaker := models.Bookmaker{Name: name, Active: true}
	if err := s.repo.Create(&bookmaker); err != nil {
		return nil, err
	}
	return &bookmaker, nil
}

// Deactivate 下线平台，历史绩效保留
func (s *BookmakerService) Deactivate(id string) error {
	bookmaker, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if bookmaker == nil {
		return ErrNotFound
	}
	_, err = s.repo.Deactivate(id)
	return err
}

// Delete 删除平台；既有绩效记录保留原始外键
func (s *BookmakerService) Delete(id string) error {
	return s.repo.Delete(id)
}

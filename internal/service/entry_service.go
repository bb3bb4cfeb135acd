package service

import (
	"strings"
	"time"

	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
)

// EntryService 绩效记录业务服务
type EntryService struct {
	repo          repository.PerformanceEntryRepository
	bookmakerRepo repository.BookmakerRepository
}

// NewEntryService 创建绩效记录服务
func NewEntryService(repo repository.PerformanceEntryRepository, bookmakerRepo repository.BookmakerRepository) *EntryService {
	return &EntryService{repo: repo, bookmakerRepo: bookmakerRepo}
}

// CreateEntryInput 录入绩效输入
type CreateEntryInput struct {
	Date           string
	ProfileID      *string
	TeamID         *string
	BookmakerID    string
	LinkIdentifier *string
	Registrations  int
	Deposits       int
	Revenue        models.Money
	NetRevenue     models.Money
}

// List 过滤查询绩效记录
func (s *EntryService) List(filter repository.PerformanceEntryListFilter) ([]models.PerformanceEntry, error) {
	filter.WithJoins = true
	return s.repo.List(filter)
}

// ListRecent 最近录入记录
func (s *EntryService) ListRecent(limit int) ([]models.PerformanceEntry, error) {
	return s.repo.ListRecent(limit)
}

// Create 录入一条绩效记录；归属主体必须且只能是团队或个人之一
func (s *EntryService) Create(input CreateEntryInput) (*models.PerformanceEntry, error) {
	date := strings.TrimSpace(input.Date)
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	teamID := normalizeIDRef(input.TeamID)
	profileID := normalizeIDRef(input.ProfileID)
	if (teamID == nil) == (profileID == nil) {
		return nil, ErrInvalidAttribution
	}

	bookmakerID := strings.TrimSpace(input.BookmakerID)
	bookmaker, err := s.bookmakerRepo.GetByID(bookmakerID)
	if err != nil {
		return nil, err
	}
	if bookmaker == nil || !bookmaker.Active {
		return nil, ErrBookmakerInvalid
	}

	linkIdentifier := normalizeIDRef(input.LinkIdentifier)
	if linkIdentifier != nil {
		switch *linkIdentifier {
		case constants.LinkIdentifierDirectLink, constants.LinkIdentifierPromoCode:
		default:
			return nil, ErrInvalidLinkType
		}
	}

	entry := models.PerformanceEntry{
		Date:           date,
		ProfileID:      profileID,
		TeamID:         teamID,
		BookmakerID:    bookmakerID,
		LinkIdentifier: linkIdentifier,
		Registrations:  input.Registrations,
		Deposits:       input.Deposits,
		Revenue:        input.Revenue,
		NetRevenue:     input.NetRevenue,
	}
	if err := s.repo.Create(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// normalizeIDRef 空白字符串引用视为未设置
func normalizeIDRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*ref)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package service

import (
	"strings"

	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"

	"gorm.io/gorm"
)

// AffiliateLinkService 推广链接配置业务服务
type AffiliateLinkService struct {
	repo          repository.AffiliateLinkRepository
	bookmakerRepo repository.BookmakerRepository
}

// NewAffiliateLinkService 创建推广链接服务
func NewAffiliateLinkService(repo repository.AffiliateLinkRepository, bookmakerRepo repository.BookmakerRepository) *AffiliateLinkService {
	return &AffiliateLinkService{repo: repo, bookmakerRepo: bookmakerRepo}
}

// UpsertLinkInput 链接配置写入输入
type UpsertLinkInput struct {
	TeamID        *string
	ProfileID     *string
	BookmakerID   string
	AffiliateLink *string
	PromoCode     *string
}

// ListByTeam 获取团队的链接配置
func (s *AffiliateLinkService) ListByTeam(teamID string) ([]models.AffiliateLink, error) {
	return s.repo.ListByEntity(repository.AffiliateLinkEntityFilter{TeamID: &teamID})
}

// ListByProfile 获取个人的链接配置
func (s *AffiliateLinkService) ListByProfile(profileID string) ([]models.AffiliateLink, error) {
	return s.repo.ListByEntity(repository.AffiliateLinkEntityFilter{ProfileID: &profileID})
}

// Upsert 写入某主体在某平台的链接配置
// 同一主体同一平台只保留一行，读写在同一事务内完成
func (s *AffiliateLinkService) Upsert(input UpsertLinkInput) (*models.AffiliateLink, error) {
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
	if bookmaker == nil {
		return nil, ErrBookmakerInvalid
	}

	filter := repository.AffiliateLinkEntityFilter{TeamID: teamID, ProfileID: profileID}

	var result *models.AffiliateLink
	err = s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		existing, err := txRepo.GetByEntityAndBookmaker(filter, bookmakerID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.AffiliateLink = input.AffiliateLink
			existing.PromoCode = input.PromoCode
			if err := txRepo.Update(existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		link := models.AffiliateLink{
			TeamID:        teamID,
			ProfileID:     profileID,
			BookmakerID:   bookmakerID,
			AffiliateLink: input.AffiliateLink,
			PromoCode:     input.PromoCode,
		}
		if err := txRepo.Create(&link); err != nil {
			return err
		}
		result = &link
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

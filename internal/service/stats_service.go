package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/afftrack-next/internal/cache"
	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
)

const statsCacheTTL = 60 * time.Second

// StatsService 绩效统计服务
// 从仓库取数后在内存中归并，归并逻辑见 stats_reduce.go
type StatsService struct {
	entryRepo     repository.PerformanceEntryRepository
	teamRepo      repository.TeamRepository
	profileRepo   repository.ProfileRepository
	bookmakerRepo repository.BookmakerRepository
	linkRepo      repository.AffiliateLinkRepository
	windowDays    int
}

// NewStatsService 创建统计服务
func NewStatsService(
	entryRepo repository.PerformanceEntryRepository,
	teamRepo repository.TeamRepository,
	profileRepo repository.ProfileRepository,
	bookmakerRepo repository.BookmakerRepository,
	linkRepo repository.AffiliateLinkRepository,
	windowDays int,
) *StatsService {
	if windowDays <= 0 {
		windowDays = constants.DefaultStatsWindowDays
	}
	return &StatsService{
		entryRepo:     entryRepo,
		teamRepo:      teamRepo,
		profileRepo:   profileRepo,
		bookmakerRepo: bookmakerRepo,
		linkRepo:      linkRepo,
		windowDays:    windowDays,
	}
}

// StatsRange 统计时间范围（含两端）
type StatsRange struct {
	StartDate string
	EndDate   string
}

// Leaderboards 团队与社区管理员排行榜
type Leaderboards struct {
	Teams []LeaderboardRow `json:"teams"`
	CMs   []LeaderboardRow `json:"cms"`
}

// resolveRange 补全并校验时间范围，默认取含今日的统计窗口
func (s *StatsService) resolveRange(input StatsRange, now time.Time) (StatsRange, error) {
	startDate := strings.TrimSpace(input.StartDate)
	endDate := strings.TrimSpace(input.EndDate)

	if endDate == "" {
		endDate = now.Format(constants.DateLayout)
	}
	if startDate == "" {
		startDate = now.AddDate(0, 0, -(s.windowDays - 1)).Format(constants.DateLayout)
	}

	if _, err := time.Parse(constants.DateLayout, startDate); err != nil {
		return StatsRange{}, ErrInvalidDate
	}
	if _, err := time.Parse(constants.DateLayout, endDate); err != nil {
		return StatsRange{}, ErrInvalidDate
	}
	return StatsRange{StartDate: startDate, EndDate: endDate}, nil
}

// DashboardStats 全局指标汇总
func (s *StatsService) DashboardStats(ctx context.Context, input StatsRange) (*EntryTotals, error) {
	window, err := s.resolveRange(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("stats:dashboard:%s:%s", window.StartDate, window.EndDate)
	var cached EntryTotals
	if hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached); cacheErr == nil && hit {
		return &cached, nil
	}

	entries, err := s.entryRepo.ListCompact(repository.PerformanceEntryListFilter{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
	})
	if err != nil {
		return nil, err
	}

	totals := sumEntries(entries)
	_ = cache.SetJSON(ctx, cacheKey, totals, statsCacheTTL)
	return &totals, nil
}

// DashboardLeaderboards 团队与社区管理员排行榜
func (s *StatsService) DashboardLeaderboards(ctx context.Context, input StatsRange) (*Leaderboards, error) {
	window, err := s.resolveRange(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("stats:leaderboards:%s:%s", window.StartDate, window.EndDate)
	var cached Leaderboards
	if hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached); cacheErr == nil && hit {
		return &cached, nil
	}

	entries, err := s.entryRepo.ListCompact(repository.PerformanceEntryListFilter{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
	})
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List()
	if err != nil {
		return nil, err
	}
	teamNames := make(map[string]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	cms, err := s.profileRepo.ListByRole(constants.ProfileRoleCM)
	if err != nil {
		return nil, err
	}
	cmNames := make(map[string]string, len(cms))
	for _, profile := range cms {
		cmNames[profile.ID] = profile.FullName
	}

	result := Leaderboards{
		Teams: buildLeaderboard(entries, teamNames, func(entry models.PerformanceEntry) *string {
			return entry.TeamID
		}),
		CMs: buildLeaderboard(entries, cmNames, func(entry models.PerformanceEntry) *string {
			return entry.ProfileID
		}),
	}
	_ = cache.SetJSON(ctx, cacheKey, result, statsCacheTTL)
	return &result, nil
}

// DashboardSeries 全局逐日净收入曲线
func (s *StatsService) DashboardSeries(ctx context.Context) ([]SeriesPoint, error) {
	return s.entitySeries(ctx, repository.PerformanceEntryListFilter{})
}

// DashboardAcquisition 全局获客方式营收占比
func (s *StatsService) DashboardAcquisition(ctx context.Context, input StatsRange) (*AcquisitionSplit, error) {
	window, err := s.resolveRange(input, time.Now())
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListCompact(repository.PerformanceEntryListFilter{
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
	})
	if err != nil {
		return nil, err
	}

	split := buildAcquisitionSplit(entries)
	return &split, nil
}

// TeamStats 单团队指标汇总
func (s *StatsService) TeamStats(ctx context.Context, teamID string, input StatsRange) (*EntryTotals, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	return s.entityStats(ctx, repository.PerformanceEntryListFilter{TeamID: teamID}, input)
}

// CMStats 单个社区管理员指标汇总
func (s *StatsService) CMStats(ctx context.Context, profileID string, input StatsRange) (*EntryTotals, error) {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return s.entityStats(ctx, repository.PerformanceEntryListFilter{ProfileID: profileID}, input)
}

// TeamBookmakers 单团队的平台维度汇总
func (s *StatsService) TeamBookmakers(ctx context.Context, teamID string, input StatsRange) ([]BookmakerBreakdownRow, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	links, err := s.linkRepo.ListByEntity(repository.AffiliateLinkEntityFilter{TeamID: &teamID})
	if err != nil {
		return nil, err
	}
	return s.entityBookmakers(ctx, repository.PerformanceEntryListFilter{TeamID: teamID}, input, links)
}

// CMBookmakers 单个社区管理员的平台维度汇总
func (s *StatsService) CMBookmakers(ctx context.Context, profileID string, input StatsRange) ([]BookmakerBreakdownRow, error) {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	links, err := s.linkRepo.ListByEntity(repository.AffiliateLinkEntityFilter{ProfileID: &profileID})
	if err != nil {
		return nil, err
	}
	return s.entityBookmakers(ctx, repository.PerformanceEntryListFilter{ProfileID: profileID}, input, links)
}

// TeamSeries 单团队逐日净收入曲线
func (s *StatsService) TeamSeries(ctx context.Context, teamID string) ([]SeriesPoint, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	return s.entitySeries(ctx, repository.PerformanceEntryListFilter{TeamID: teamID})
}

// CMSeries 单个社区管理员逐日净收入曲线
func (s *StatsService) CMSeries(ctx context.Context, profileID string) ([]SeriesPoint, error) {
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return s.entitySeries(ctx, repository.PerformanceEntryListFilter{ProfileID: profileID})
}

func (s *StatsService) entityStats(_ context.Context, filter repository.PerformanceEntryListFilter, input StatsRange) (*EntryTotals, error) {
	window, err := s.resolveRange(input, time.Now())
	if err != nil {
		return nil, err
	}
	filter.StartDate = window.StartDate
	filter.EndDate = window.EndDate

	entries, err := s.entryRepo.ListCompact(filter)
	if err != nil {
		return nil, err
	}
	totals := sumEntries(entries)
	return &totals, nil
}

func (s *StatsService) entityBookmakers(_ context.Context, filter repository.PerformanceEntryListFilter, input StatsRange, links []models.AffiliateLink) ([]BookmakerBreakdownRow, error) {
	window, err := s.resolveRange(input, time.Now())
	if err != nil {
		return nil, err
	}
	filter.StartDate = window.StartDate
	filter.EndDate = window.EndDate

	entries, err := s.entryRepo.ListCompact(filter)
	if err != nil {
		return nil, err
	}

	bookmakers, err := s.bookmakerRepo.List(true)
	if err != nil {
		return nil, err
	}
	bookmakerNames := make(map[string]string, len(bookmakers))
	for _, bookmaker := range bookmakers {
		bookmakerNames[bookmaker.ID] = bookmaker.Name
	}

	return buildBookmakerBreakdown(entries, bookmakerNames, links), nil
}

func (s *StatsService) entitySeries(_ context.Context, filter repository.PerformanceEntryListFilter) ([]SeriesPoint, error) {
	now := time.Now()
	filter.StartDate = now.AddDate(0, 0, -(s.windowDays - 1)).Format(constants.DateLayout)
	filter.EndDate = now.Format(constants.DateLayout)

	entries, err := s.entryRepo.ListCompact(filter)
	if err != nil {
		return nil, err
	}
	return buildDailySeries(entries, now, s.windowDays), nil
}

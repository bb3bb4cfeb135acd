package admin

import (
	"errors"

	"github.com/afftrack-next/internal/http/response"
	"github.com/afftrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetTeams 获取团队列表
func (h *Handler) GetTeams(c *gin.Context) {
	teams, err := h.TeamService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "团队列表获取失败", err)
		return
	}
	response.Success(c, teams)
}

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTeam 创建团队
func (h *Handler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "无效的请求参数", err)
		return
	}

	team, err := h.TeamService.Create(service.CreateTeamInput{Name: req.Name})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			respondError(c, response.CodeBadRequest, "名称不能为空", nil)
			return
		}
		respondError(c, response.CodeInternal, "团队创建失败", err)
		return
	}
	response.Success(c, team)
}

// GetTeam 获取团队详情
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	team, err := h.TeamService.Detail(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "团队不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "团队获取失败", err)
		return
	}
	response.Success(c, team)
}

// DeleteTeam 删除团队
func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	if err := h.TeamService.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "团队删除失败", err)
		return
	}
	response.Success(c, nil)
}

// GetTeamStats 获取团队指标汇总
func (h *Handler) GetTeamStats(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	totals, err := h.StatsService.TeamStats(c.Request.Context(), id, getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "团队统计获取失败")
		return
	}
	response.Success(c, totals)
}

// GetTeamBookmakers 获取团队的平台维度汇总
func (h *Handler) GetTeamBookmakers(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	rows, err := h.StatsService.TeamBookmakers(c.Request.Context(), id, getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "团队平台统计获取失败")
		return
	}
	response.Success(c, rows)
}

// GetTeamSeries 获取团队趋势曲线
func (h *Handler) GetTeamSeries(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	points, err := h.StatsService.TeamSeries(c.Request.Context(), id)
	if err != nil {
		respondStatsError(c, err, "团队趋势获取失败")
		return
	}
	response.Success(c, points)
}

// GetTeamLinks 获取团队的链接配置
func (h *Handler) GetTeamLinks(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	if _, err := h.TeamService.Get(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "团队不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "团队获取失败", err)
		return
	}

	links, err := h.AffiliateLinkService.ListByTeam(id)
	if err != nil {
		respondError(c, response.CodeInternal, "链接配置获取失败", err)
		return
	}
	response.Success(c, links)
}

// UpsertLinkRequest 写入链接配置请求
type UpsertLinkRequest struct {
	BookmakerID   string  `json:"bookmaker_id" binding:"required"`
	AffiliateLink *string `json:"affiliate_link"`
	PromoCode     *string `json:"promo_code"`
}

// UpsertTeamLink 写入团队在某平台的链接配置
func (h *Handler) UpsertTeamLink(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	var req UpsertLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "无效的请求参数", err)
		return
	}

	if _, err := h.TeamService.Get(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "团队不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "团队获取失败", err)
		return
	}

	link, err := h.AffiliateLinkService.Upsert(service.UpsertLinkInput{
		TeamID:        &id,
		BookmakerID:   req.BookmakerID,
		AffiliateLink: req.AffiliateLink,
		PromoCode:     req.PromoCode,
	})
	if err != nil {
		respondLinkError(c, err)
		return
	}
	response.Success(c, link)
}

func respondStatsError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "记录不存在", nil)
	case errors.Is(err, service.ErrInvalidDate):
		respondError(c, response.CodeBadRequest, "无效的日期格式", nil)
	default:
		respondError(c, response.CodeInternal, fallbackMsg, err)
	}
}

func respondLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAttribution):
		respondError(c, response.CodeBadRequest, "归属主体无效", nil)
	case errors.Is(err, service.ErrBookmakerInvalid):
		respondError(c, response.CodeBadRequest, "平台不存在", nil)
	default:
		respondError(c, response.CodeInternal, "链接配置保存失败", err)
	}
}

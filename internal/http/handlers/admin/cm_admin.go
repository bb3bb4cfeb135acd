package admin

import (
	"errors"

	"github.com/afftrack-next/internal/http/response"
	"github.com/afftrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCMs 获取社区管理员列表
func (h *Handler) GetCMs(c *gin.Context) {
	cms, err := h.ProfileService.ListCMs()
	if err != nil {
		respondError(c, response.CodeInternal, "社区管理员列表获取失败", err)
		return
	}
	response.Success(c, cms)
}

// GetCM 获取社区管理员详情
func (h *Handler) GetCM(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	profile, err := h.ProfileService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "社区管理员不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "社区管理员获取失败", err)
		return
	}
	response.Success(c, profile)
}

// GetCMStats 获取社区管理员指标汇总
func (h *Handler) GetCMStats(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	totals, err := h.StatsService.CMStats(c.Request.Context(), id, getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "社区管理员统计获取失败")
		return
	}
	response.Success(c, totals)
}

// GetCMBookmakers 获取社区管理员的平台维度汇总
func (h *Handler) GetCMBookmakers(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	rows, err := h.StatsService.CMBookmakers(c.Request.Context(), id, getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "社区管理员平台统计获取失败")
		return
	}
	response.Success(c, rows)
}

// GetCMSeries 获取社区管理员趋势曲线
func (h *Handler) GetCMSeries(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	points, err := h.StatsService.CMSeries(c.Request.Context(), id)
	if err != nil {
		respondStatsError(c, err, "社区管理员趋势获取失败")
		return
	}
	response.Success(c, points)
}

// GetCMLinks 获取社区管理员的链接配置
func (h *Handler) GetCMLinks(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	if _, err := h.ProfileService.Get(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "社区管理员不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "社区管理员获取失败", err)
		return
	}

	links, err := h.AffiliateLinkService.ListByProfile(id)
	if err != nil {
		respondError(c, response.CodeInternal, "链接配置获取失败", err)
		return
	}
	response.Success(c, links)
}

// UpsertCMLink 写入社区管理员在某平台的链接配置
func (h *Handler) UpsertCMLink(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	var req UpsertLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "无效的请求参数", err)
		return
	}

	if _, err := h.ProfileService.Get(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "社区管理员不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "社区管理员获取失败", err)
		return
	}

	link, err := h.AffiliateLinkService.Upsert(service.UpsertLinkInput{
		ProfileID:     &id,
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

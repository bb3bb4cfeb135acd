package admin

import (
	"github.com/afftrack-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats 全局指标汇总
func (h *Handler) GetDashboardStats(c *gin.Context) {
	totals, err := h.StatsService.DashboardStats(c.Request.Context(), getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "全局统计获取失败")
		return
	}
	response.Success(c, totals)
}

// GetDashboardLeaderboards 团队与社区管理员排行榜
func (h *Handler) GetDashboardLeaderboards(c *gin.Context) {
	boards, err := h.StatsService.DashboardLeaderboards(c.Request.Context(), getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "排行榜获取失败")
		return
	}
	response.Success(c, boards)
}

// GetDashboardSeries 全局逐日净收入曲线
func (h *Handler) GetDashboardSeries(c *gin.Context) {
	points, err := h.StatsService.DashboardSeries(c.Request.Context())
	if err != nil {
		respondStatsError(c, err, "全局趋势获取失败")
		return
	}
	response.Success(c, points)
}

// GetDashboardAcquisition 全局获客方式营收占比
func (h *Handler) GetDashboardAcquisition(c *gin.Context) {
	split, err := h.StatsService.DashboardAcquisition(c.Request.Context(), getStatsRange(c))
	if err != nil {
		respondStatsError(c, err, "获客占比获取失败")
		return
	}
	response.Success(c, split)
}

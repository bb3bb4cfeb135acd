package admin

import (
	"errors"
	"strconv"

	"github.com/afftrack-next/internal/http/response"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
	"github.com/afftrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateEntryRequest 录入绩效记录请求
type CreateEntryRequest struct {
	Date           string  `json:"date" binding:"required"`
	ProfileID      *string `json:"profile_id"`
	TeamID         *string `json:"team_id"`
	BookmakerID    string  `json:"bookmaker_id" binding:"required"`
	LinkIdentifier *string `json:"link_identifier"`
	Registrations  int     `json:"registrations"`
	Deposits       int     `json:"deposits"`
	Revenue        float64 `json:"revenue"`
	NetRevenue     float64 `json:"net_revenue"`
}

// CreateEntry 录入一条绩效记录
func (h *Handler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "无效的请求参数", err)
		return
	}

	entry, err := h.EntryService.Create(service.CreateEntryInput{
		Date:           req.Date,
		ProfileID:      req.ProfileID,
		TeamID:         req.TeamID,
		BookmakerID:    req.BookmakerID,
		LinkIdentifier: req.LinkIdentifier,
		Registrations:  req.Registrations,
		Deposits:       req.Deposits,
		Revenue:        models.NewMoneyFromFloat(req.Revenue),
		NetRevenue:     models.NewMoneyFromFloat(req.NetRevenue),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			respondError(c, response.CodeBadRequest, "无效的日期格式", nil)
		case errors.Is(err, service.ErrInvalidAttribution):
			respondError(c, response.CodeBadRequest, "归属主体必须且只能是团队或个人之一", nil)
		case errors.Is(err, service.ErrBookmakerInvalid):
			respondError(c, response.CodeBadRequest, "平台不存在或已下线", nil)
		case errors.Is(err, service.ErrInvalidLinkType):
			respondError(c, response.CodeBadRequest, "无效的链接类型", nil)
		default:
			respondError(c, response.CodeInternal, "绩效记录创建失败", err)
		}
		return
	}
	response.Success(c, entry)
}

// GetEntries 过滤查询绩效记录
func (h *Handler) GetEntries(c *gin.Context) {
	filter := repository.PerformanceEntryListFilter{
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		TeamID:      c.Query("team_id"),
		ProfileID:   c.Query("profile_id"),
		BookmakerID: c.Query("bookmaker_id"),
	}

	entries, err := h.EntryService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "绩效记录查询失败", err)
		return
	}
	response.Success(c, entries)
}

// GetRecentEntries 最近录入记录
func (h *Handler) GetRecentEntries(c *gin.Context) {
	limit := h.Config.Stats.RecentEntriesLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, response.CodeBadRequest, "无效的数量参数", err)
			return
		}
		limit = parsed
	}

	entries, err := h.EntryService.ListRecent(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "最近记录查询失败", err)
		return
	}
	response.Success(c, entries)
}

package admin

import (
	"errors"

	"github.com/afftrack-next/internal/http/response"
	"github.com/afftrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProfileRequest 创建人员档案请求
type CreateProfileRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Role           string  `json:"role" binding:"required"`
	TeamID         *string `json:"team_id"`
	YoutubeChannel *string `json:"youtube_channel"`
}

// GetProfiles 获取人员档案列表
func (h *Handler) GetProfiles(c *gin.Context) {
	profiles, err := h.ProfileService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "人员档案列表获取失败", err)
		return
	}
	response.Success(c, profiles)
}

// CreateProfile 创建人员档案
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "无效的请求参数", err)
		return
	}

	profile, err := h.ProfileService.Create(service.CreateProfileInput{
		FullName:       req.FullName,
		Role:           req.Role,
		TeamID:         req.TeamID,
		YoutubeChannel: req.YoutubeChannel,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			respondError(c, response.CodeBadRequest, "姓名不能为空", nil)
		case errors.Is(err, service.ErrInvalidRole):
			respondError(c, response.CodeBadRequest, "无效的档案角色", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeBadRequest, "所属团队不存在", nil)
		default:
			respondError(c, response.CodeInternal, "人员档案创建失败", err)
		}
		return
	}
	response.Success(c, profile)
}

// DeleteProfile 删除人员档案
func (h *Handler) DeleteProfile(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	if err := h.ProfileService.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "人员档案删除失败", err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

package admin

import (
	"errors"

	"github.com/afftrack-next/internal/http/response"
	"github.com/afftrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBookmakerRequest 创建博彩平台请求
type CreateBookmakerRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetBookmakers 获取平台列表，?all=true 时包含已下线平台
func (h *Handler) GetBookmakers(c *gin.Context) {
	if c.Query("all") == "true" {
		list, err := h.BookmakerService.ListAll()
		if err != nil {
			respondError(c, response.CodeInternal, "平台列表获取失败", err)
			return
		}
		response.Success(c, list)
		return
	}

	list, err := h.BookmakerService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "平台列表获取失败", err)
		return
	}
	response.Success(c, list)
}

// CreateBookmaker 创建博彩平台
func (h *Handler) CreateBookmaker(c *gin.Context) {
	var req CreateBookmakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "无效的请求参数", err)
		return
	}

	bookmaker, err := h.BookmakerService.Create(service.CreateBookmakerInput{Name: req.Name})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			respondError(c, response.CodeBadRequest, "平台名称不能为空", nil)
			return
		}
		respondError(c, response.CodeInternal, "平台创建失败", err)
		return
	}
	response.Success(c, bookmaker)
}

// DeactivateBookmaker 下线平台
func (h *Handler) DeactivateBookmaker(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	if err := h.BookmakerService.Deactivate(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "平台不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "平台下线失败", err)
		return
	}
	response.SuccessWithMsg(c, "下线成功", nil)
}

// DeleteBookmaker 删除平台
func (h *Handler) DeleteBookmaker(c *gin.Context) {
	id, ok := getPathID(c)
	if !ok {
		return
	}

	if err := h.BookmakerService.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "平台删除失败", err)
		return
	}
	response.SuccessWithMsg(c, "删除成功", nil)
}

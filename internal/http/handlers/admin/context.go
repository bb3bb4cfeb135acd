package admin

import (
	"strings"

	handlershared "github.com/afftrack-next/internal/http/handlers/shared"
	"github.com/afftrack-next/internal/http/response"
	"github.com/afftrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "admin_id")
}

// getPathID 读取路径上的实体 ID
func getPathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "无效的请求参数", nil)
		return "", false
	}
	return id, true
}

// getStatsRange 读取统计时间范围查询参数
func getStatsRange(c *gin.Context) service.StatsRange {
	return service.StatsRange{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

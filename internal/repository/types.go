package repository

// PerformanceEntryListFilter 查询绩效记录的过滤条件
type PerformanceEntryListFilter struct {
	StartDate   string // 含当天，格式 2006-01-02
	EndDate     string // 含当天
	TeamID      string
	ProfileID   string
	BookmakerID string
	WithJoins   bool
	Limit       int
}

// AffiliateLinkEntityFilter 按归属主体查询推广链接
type AffiliateLinkEntityFilter struct {
	TeamID    *string
	ProfileID *string
}

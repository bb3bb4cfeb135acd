package constants

// 档案角色
const (
	ProfileRoleAdmin  = "admin"
	ProfileRoleEditor = "editor"
	ProfileRoleCM     = "cm"
)

// ProfileRoles 全部合法档案角色
func ProfileRoles() []string {
	return []string{ProfileRoleAdmin, ProfileRoleEditor, ProfileRoleCM}
}

// 管理端登录角色
const (
	AdminRoleAdmin  = "admin"
	AdminRoleEditor = "editor"
)

// 业绩录入的获客方式标识
const (
	LinkIdentifierDirectLink = "direct_link"
	LinkIdentifierPromoCode  = "promo_code"
)

// 日期字段统一使用的格式（定宽 ISO 日期，字典序即时间序）
const DateLayout = "2006-01-02"

// 默认统计窗口天数（仪表盘与趋势图）
const DefaultStatsWindowDays = 30

// 验证码场景
const (
	CaptchaSceneLogin = "login"
)

// 验证码提供方
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

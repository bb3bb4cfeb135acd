package service

import "errors"

// 业务层通用错误，由 handler 统一映射为响应码
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidPassword    = errors.New("旧密码错误")
	ErrWeakPassword       = errors.New("密码强度不足")
	ErrCaptchaRequired    = errors.New("需要验证码")
	ErrCaptchaInvalid     = errors.New("验证码错误")
	ErrNameRequired       = errors.New("名称不能为空")
	ErrInvalidRole        = errors.New("无效的人员角色")
	ErrInvalidDate        = errors.New("无效的日期格式")
	ErrInvalidAttribution = errors.New("归属主体无效")
	ErrInvalidLinkType    = errors.New("无效的链接类型")
	ErrBookmakerInvalid   = errors.New("平台不存在或已下线")
)

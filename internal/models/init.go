package models

import (
	"strings"

	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAdmin 初始化默认管理员账号
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)

	// 已有账号时，确保默认 admin 账号持有 admin 角色
	if count > 0 {
		if err := DB.Model(&Admin{}).Where("username = ?", "admin").Update("role", constants.AdminRoleAdmin).Error; err != nil {
			logger.Warnw("ensure_default_admin_role_failed", "error", err)
		}
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := constants.AdminRoleEditor
	if strings.EqualFold(strings.TrimSpace(username), "admin") {
		role = constants.AdminRoleAdmin
	}
	admin := Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}

	return nil
}

package authz

import (
	"fmt"

	"github.com/afftrack-next/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
// admin 拥有管理端全部权限；editor 仅能录入绩效并读取录入表单所需的基础列表
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.AdminRoleAdmin,
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
		{
			Role: constants.AdminRoleEditor,
			Policies: []Policy{
				{Object: "/admin/authz/me", Action: "GET"},
				{Object: "/admin/password", Action: "PUT"},
				{Object: "/admin/entries", Action: "POST"},
				{Object: "/admin/entries/recent", Action: "GET"},
				{Object: "/admin/teams", Action: "GET"},
				{Object: "/admin/cms", Action: "GET"},
				{Object: "/admin/bookmakers", Action: "GET"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}

	return nil
}

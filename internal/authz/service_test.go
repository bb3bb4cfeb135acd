package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/afftrack-next/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestAdminRoleCoversEverything(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SetAdminRoles(1, []string{constants.AdminRoleAdmin}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	checks := []struct {
		obj string
		act string
	}{
		{obj: "/api/v1/admin/teams", act: "POST"},
		{obj: "/api/v1/admin/teams/42", act: "DELETE"},
		{obj: "/api/v1/admin/dashboard/leaderboards", act: "GET"},
		{obj: "/api/v1/admin/bookmakers/7/deactivate", act: "POST"},
	}
	for _, check := range checks {
		allow, err := svc.EnforceAdmin(1, check.obj, check.act)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", check.act, check.obj, err)
		}
		if !allow {
			t.Fatalf("admin role should allow %s %s", check.act, check.obj)
		}
	}
}

func TestEditorRoleLimitedToEntrySurface(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SetAdminRoles(2, []string{constants.AdminRoleEditor}); err != nil {
		t.Fatalf("set editor roles failed: %v", err)
	}

	allowed := []struct {
		obj string
		act string
	}{
		{obj: "/api/v1/admin/entries", act: "POST"},
		{obj: "/api/v1/admin/entries/recent", act: "GET"},
		{obj: "/api/v1/admin/teams", act: "GET"},
		{obj: "/api/v1/admin/cms", act: "GET"},
		{obj: "/api/v1/admin/bookmakers", act: "GET"},
	}
	for _, check := range allowed {
		allow, err := svc.EnforceAdmin(2, check.obj, check.act)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", check.act, check.obj, err)
		}
		if !allow {
			t.Fatalf("editor role should allow %s %s", check.act, check.obj)
		}
	}

	denied := []struct {
		obj string
		act string
	}{
		{obj: "/api/v1/admin/teams", act: "POST"},
		{obj: "/api/v1/admin/teams/42", act: "DELETE"},
		{obj: "/api/v1/admin/entries", act: "GET"},
		{obj: "/api/v1/admin/dashboard/stats", act: "GET"},
		{obj: "/api/v1/admin/bookmakers/7/deactivate", act: "POST"},
	}
	for _, check := range denied {
		allow, err := svc.EnforceAdmin(2, check.obj, check.act)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", check.act, check.obj, err)
		}
		if allow {
			t.Fatalf("editor role should deny %s %s", check.act, check.obj)
		}
	}
}

func TestSetAdminRolesOverride(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	if err := svc.SetAdminRoles(3, []string{constants.AdminRoleAdmin}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	roles, err := svc.GetAdminRoles(3)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:admin" {
		t.Fatalf("roles want [role:admin], got=%v", roles)
	}

	if err := svc.SetAdminRoles(3, []string{constants.AdminRoleEditor}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}
	roles, err = svc.GetAdminRoles(3)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:editor" {
		t.Fatalf("roles want [role:editor], got=%v", roles)
	}

	allow, err := svc.EnforceAdmin(3, "/admin/teams", "POST")
	if err != nil {
		t.Fatalf("enforce old role failed: %v", err)
	}
	if allow {
		t.Fatalf("expected old role permission removed")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/teams/:id", want: "/admin/teams/:id"},
		{in: "/admin/teams/:id", want: "/admin/teams/:id"},
		{in: "admin/entries", want: "/admin/entries"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

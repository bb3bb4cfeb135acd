package provider

import (
	"github.com/afftrack-next/internal/authz"
	"github.com/afftrack-next/internal/cache"
	"github.com/afftrack-next/internal/config"
	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/logger"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
	"github.com/afftrack-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo     repository.AdminRepository
	TeamRepo      repository.TeamRepository
	ProfileRepo   repository.ProfileRepository
	BookmakerRepo repository.BookmakerRepository
	EntryRepo     repository.PerformanceEntryRepository
	LinkRepo      repository.AffiliateLinkRepository

	// Services
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	CaptchaService       *service.CaptchaService
	TeamService          *service.TeamService
	ProfileService       *service.ProfileService
	BookmakerService     *service.BookmakerService
	EntryService         *service.EntryService
	AffiliateLinkService *service.AffiliateLinkService
	StatsService         *service.StatsService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	// 3. 同步管理员角色授权
	c.syncAdminRoles()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.TeamRepo = repository.NewTeamRepository(db)
	c.ProfileRepo = repository.NewProfileRepository(db)
	c.BookmakerRepo = repository.NewBookmakerRepository(db)
	c.EntryRepo = repository.NewPerformanceEntryRepository(db)
	c.LinkRepo = repository.NewAffiliateLinkRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.TeamService = service.NewTeamService(c.TeamRepo)
	c.ProfileService = service.NewProfileService(c.ProfileRepo, c.TeamRepo)
	c.BookmakerService = service.NewBookmakerService(c.BookmakerRepo)
	c.EntryService = service.NewEntryService(c.EntryRepo, c.BookmakerRepo)
	c.AffiliateLinkService = service.NewAffiliateLinkService(c.LinkRepo, c.BookmakerRepo)
	c.StatsService = service.NewStatsService(c.EntryRepo, c.TeamRepo, c.ProfileRepo, c.BookmakerRepo, c.LinkRepo, c.Config.Stats.WindowDays)
}

// syncAdminRoles 把管理员表中记录的角色同步进授权引擎；未知角色降级为 editor
func (c *Container) syncAdminRoles() {
	admins, err := c.AdminRepo.List()
	if err != nil {
		logger.Errorw("provider_sync_admin_roles_failed", "error", err)
		return
	}
	for _, admin := range admins {
		role := admin.Role
		if role != constants.AdminRoleAdmin && role != constants.AdminRoleEditor {
			role = constants.AdminRoleEditor
		}
		if err := c.AuthzService.SetAdminRoles(admin.ID, []string{role}); err != nil {
			logger.Warnw("provider_sync_admin_role_failed", "admin_id", admin.ID, "role", role, "error", err)
		}
	}
}

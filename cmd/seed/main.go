package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/afftrack-next/internal/config"
	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/logger"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 团队
	teamNames := []string{"Alpha Squad", "Bravo Crew", "Delta Force"}
	teams := make([]models.Team, 0, len(teamNames))
	for _, name := range teamNames {
		var existing models.Team
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err == nil {
			stdLog.Printf("Team already exists: %s", name)
			teams = append(teams, existing)
			continue
		}
		team := models.Team{Name: name}
		if err := models.DB.Create(&team).Error; err != nil {
			stdLog.Fatalf("Failed to create team %s: %v", name, err)
		}
		stdLog.Printf("Created team: %s", name)
		teams = append(teams, team)
	}

	// 社区管理员档案
	cmNames := []string{"Carlos Mendes", "Luisa Ferraz", "Rafael Costa", "Mariana Lopes"}
	cms := make([]models.Profile, 0, len(cmNames))
	for i, name := range cmNames {
		var existing models.Profile
		if err := models.DB.Where("full_name = ?", name).First(&existing).Error; err == nil {
			stdLog.Printf("Profile already exists: %s", name)
			cms = append(cms, existing)
			continue
		}
		channel := fmt.Sprintf("https://youtube.com/@%s", []string{"carlosbet", "luisawins", "rafaplay", "marilucky"}[i])
		profile := models.Profile{
			FullName:       name,
			Role:           constants.ProfileRoleCM,
			TeamID:         &teams[i%len(teams)].ID,
			YoutubeChannel: &channel,
		}
		if err := models.DB.Create(&profile).Error; err != nil {
			stdLog.Fatalf("Failed to create profile %s: %v", name, err)
		}
		stdLog.Printf("Created profile: %s", name)
		cms = append(cms, profile)
	}

	// 合作方
	bookmakerNames := []string{"BetMax", "LuckyPlay", "SpinCity", "WinZone"}
	bookmakers := make([]models.Bookmaker, 0, len(bookmakerNames))
	for _, name := range bookmakerNames {
		var existing models.Bookmaker
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err == nil {
			stdLog.Printf("Bookmaker already exists: %s", name)
			bookmakers = append(bookmakers, existing)
			continue
		}
		bookmaker := models.Bookmaker{Name: name, Active: true}
		if err := models.DB.Create(&bookmaker).Error; err != nil {
			stdLog.Fatalf("Failed to create bookmaker %s: %v", name, err)
		}
		stdLog.Printf("Created bookmaker: %s", name)
		bookmakers = append(bookmakers, bookmaker)
	}

	// 链接配置
	for i, cm := range cms {
		bookmaker := bookmakers[i%len(bookmakers)]
		var existing models.AffiliateLink
		if err := models.DB.Where("profile_id = ? AND bookmaker_id = ?", cm.ID, bookmaker.ID).First(&existing).Error; err == nil {
			continue
		}
		link := fmt.Sprintf("https://%s.example.com/ref/%d", bookmaker.Name, 1000+i)
		code := fmt.Sprintf("CM%d%s", i+1, bookmaker.Name[:3])
		if err := models.DB.Create(&models.AffiliateLink{
			ProfileID:     &cm.ID,
			BookmakerID:   bookmaker.ID,
			AffiliateLink: &link,
			PromoCode:     &code,
		}).Error; err != nil {
			stdLog.Printf("Failed to create affiliate link: %v", err)
		}
	}

	// 近 30 天业绩记录
	entryRepo := repository.NewPerformanceEntryRepository(models.DB)
	entryCount, err := entryRepo.Count()
	if err != nil {
		stdLog.Fatalf("Failed to count performance entries: %v", err)
	}
	if entryCount > 0 {
		stdLog.Printf("Performance entries already seeded (%d rows), skipping", entryCount)
		return
	}

	rng := rand.New(rand.NewSource(42))
	identifiers := []string{constants.LinkIdentifierDirectLink, constants.LinkIdentifierPromoCode}
	now := time.Now()
	created := 0
	for offset := 29; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset).Format(constants.DateLayout)
		for _, team := range teams {
			if rng.Intn(3) == 0 {
				continue
			}
			revenue := float64(rng.Intn(40000)+5000) / 100
			entry := models.PerformanceEntry{
				Date:          date,
				TeamID:        &team.ID,
				BookmakerID:   bookmakers[rng.Intn(len(bookmakers))].ID,
				Registrations: rng.Intn(40),
				Deposits:      rng.Intn(20),
				Revenue:       models.NewMoneyFromFloat(revenue),
				NetRevenue:    models.NewMoneyFromFloat(revenue * 0.7),
			}
			if err := models.DB.Create(&entry).Error; err != nil {
				stdLog.Fatalf("Failed to create team entry: %v", err)
			}
			created++
		}
		for _, cm := range cms {
			if rng.Intn(3) == 0 {
				continue
			}
			identifier := identifiers[rng.Intn(len(identifiers))]
			revenue := float64(rng.Intn(25000)+2000) / 100
			entry := models.PerformanceEntry{
				Date:           date,
				ProfileID:      &cm.ID,
				BookmakerID:    bookmakers[rng.Intn(len(bookmakers))].ID,
				LinkIdentifier: &identifier,
				Registrations:  rng.Intn(25),
				Deposits:       rng.Intn(12),
				Revenue:        models.NewMoneyFromFloat(revenue),
				NetRevenue:     models.NewMoneyFromFloat(revenue * 0.65),
			}
			if err := models.DB.Create(&entry).Error; err != nil {
				stdLog.Fatalf("Failed to create cm entry: %v", err)
			}
			created++
		}
	}
	stdLog.Printf("Seeded %d performance entries", created)
}

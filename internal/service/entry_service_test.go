package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/models"
	"github.com/afftrack-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEntryServiceTest(t *testing.T) (*EntryService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Team{},
		&models.Profile{},
		&models.Bookmaker{},
		&models.PerformanceEntry{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewEntryService(
		repository.NewPerformanceEntryRepository(db),
		repository.NewBookmakerRepository(db),
	)
	return svc, db
}

func TestEntryCreateRequiresSingleAttribution(t *testing.T) {
	svc, db := setupEntryServiceTest(t)

	bookmaker := &models.Bookmaker{Name: "BetOne", Active: true}
	if err := db.Create(bookmaker).Error; err != nil {
		t.Fatalf("create bookmaker failed: %v", err)
	}

	teamID := "team-1"
	profileID := "profile-1"

	if _, err := svc.Create(CreateEntryInput{
		Date:        "2025-05-01",
		BookmakerID: bookmaker.ID,
	}); !errors.Is(err, ErrInvalidAttribution) {
		t.Fatalf("no subject want ErrInvalidAttribution got %v", err)
	}

	if _, err := svc.Create(CreateEntryInput{
		Date:        "2025-05-01",
		TeamID:      &teamID,
		ProfileID:   &profileID,
		BookmakerID: bookmaker.ID,
	}); !errors.Is(err, ErrInvalidAttribution) {
		t.Fatalf("both subjects want ErrInvalidAttribution got %v", err)
	}

	entry, err := svc.Create(CreateEntryInput{
		Date:        "2025-05-01",
		TeamID:      &teamID,
		BookmakerID: bookmaker.ID,
		Revenue:     moneyFromInt(10),
		NetRevenue:  moneyFromInt(5),
	})
	if err != nil {
		t.Fatalf("valid create failed: %v", err)
	}
	if entry.TeamID == nil || *entry.TeamID != teamID {
		t.Fatalf("team id want %s got %+v", teamID, entry.TeamID)
	}
	if entry.ProfileID != nil {
		t.Fatalf("profile id want nil got %v", *entry.ProfileID)
	}
}

func TestEntryCreateRejectsBadDate(t *testing.T) {
	svc, db := setupEntryServiceTest(t)

	bookmaker := &models.Bookmaker{Name: "BetOne", Active: true}
	if err := db.Create(bookmaker).Error; err != nil {
		t.Fatalf("create bookmaker failed: %v", err)
	}

	teamID := "team-1"
	for _, date := range []string{"", "05/01/2025", "2025-13-40", "yesterday"} {
		if _, err := svc.Create(CreateEntryInput{
			Date:        date,
			TeamID:      &teamID,
			BookmakerID: bookmaker.ID,
		}); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("date %q want ErrInvalidDate got %v", date, err)
		}
	}
}

func TestEntryCreateRejectsInactiveBookmaker(t *testing.T) {
	svc, db := setupEntryServiceTest(t)

	bookmaker := &models.Bookmaker{Name: "BetOne", Active: true}
	if err := db.Create(bookmaker).Error; err != nil {
		t.Fatalf("create bookmaker failed: %v", err)
	}
	if err := db.Model(bookmaker).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate bookmaker failed: %v", err)
	}

	teamID := "team-1"
	if _, err := svc.Create(CreateEntryInput{
		Date:        "2025-05-01",
		TeamID:      &teamID,
		BookmakerID: bookmaker.ID,
	}); !errors.Is(err, ErrBookmakerInvalid) {
		t.Fatalf("inactive bookmaker want ErrBookmakerInvalid got %v", err)
	}
}

func TestEntryCreateRejectsUnknownLinkIdentifier(t *testing.T) {
	svc, db := setupEntryServiceTest(t)

	bookmaker := &models.Bookmaker{Name: "BetOne", Active: true}
	if err := db.Create(bookmaker).Error; err != nil {
		t.Fatalf("create bookmaker failed: %v", err)
	}

	teamID := "team-1"
	bad := "banner_ad"
	if _, err := svc.Create(CreateEntryInput{
		Date:           "2025-05-01",
		TeamID:         &teamID,
		BookmakerID:    bookmaker.ID,
		LinkIdentifier: &bad,
	}); !errors.Is(err, ErrInvalidLinkType) {
		t.Fatalf("want ErrInvalidLinkType got %v", err)
	}

	good := constants.LinkIdentifierPromoCode
	entry, err := svc.Create(CreateEntryInput{
		Date:           "2025-05-01",
		TeamID:         &teamID,
		BookmakerID:    bookmaker.ID,
		LinkIdentifier: &good,
	})
	if err != nil {
		t.Fatalf("valid link identifier failed: %v", err)
	}
	if entry.LinkIdentifier == nil || *entry.LinkIdentifier != constants.LinkIdentifierPromoCode {
		t.Fatalf("link identifier want promo_code got %+v", entry.LinkIdentifier)
	}
}

func TestEntryCreateAcceptsNegativeRevenue(t *testing.T) {
	svc, db := setupEntryServiceTest(t)

	bookmaker := &models.Bookmaker{Name: "BetOne", Active: true}
	if err := db.Create(bookmaker).Error; err != nil {
		t.Fatalf("create bookmaker failed: %v", err)
	}

	teamID := "team-1"
	entry, err := svc.Create(CreateEntryInput{
		Date:        "2025-05-01",
		TeamID:      &teamID,
		BookmakerID: bookmaker.ID,
		Revenue:     moneyFromInt(-50),
		NetRevenue:  moneyFromInt(-75),
	})
	if err != nil {
		t.Fatalf("negative revenue create failed: %v", err)
	}
	if entry.NetRevenue.String() != "-75.00" {
		t.Fatalf("net revenue want -75.00 got %s", entry.NetRevenue.String())
	}
}

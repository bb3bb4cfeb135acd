package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/afftrack-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupEntryRepositoryTest(t *testing.T) (*GormPerformanceEntryRepository, *gorm.DB) {
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
	return NewPerformanceEntryRepository(db), db
}

func createTestBookmaker(t *testing.T, db *gorm.DB, name string) *models.Bookmaker {
	t.Helper()
	bookmaker := &models.Bookmaker{Name: name, Active: true}
	if err := db.Create(bookmaker).Error; err != nil {
		t.Fatalf("create bookmaker failed: %v", err)
	}
	return bookmaker
}

func createTestEntry(t *testing.T, db *gorm.DB, date string, teamID *string, bookmakerID string, netRevenue int64) *models.PerformanceEntry {
	t.Helper()
	entry := &models.PerformanceEntry{
		Date:          date,
		TeamID:        teamID,
		BookmakerID:   bookmakerID,
		Registrations: 5,
		Deposits:      3,
		Revenue:       models.NewMoneyFromDecimal(decimal.NewFromInt(netRevenue * 2)),
		NetRevenue:    models.NewMoneyFromDecimal(decimal.NewFromInt(netRevenue)),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("create entry failed: %v", err)
	}
	return entry
}

func TestEntryListOrdersByDateDesc(t *testing.T) {
	repo, db := setupEntryRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	team := &models.Team{Name: "Alpha"}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	createTestEntry(t, db, "2025-01-02", &team.ID, bookmaker.ID, 100)
	createTestEntry(t, db, "2025-01-05", &team.ID, bookmaker.ID, 200)
	createTestEntry(t, db, "2025-01-03", &team.ID, bookmaker.ID, 300)

	entries, err := repo.List(PerformanceEntryListFilter{})
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries want 3 got %d", len(entries))
	}
	wantDates := []string{"2025-01-05", "2025-01-03", "2025-01-02"}
	for i, want := range wantDates {
		if entries[i].Date != want {
			t.Fatalf("entry %d date want %s got %s", i, want, entries[i].Date)
		}
	}
}

func TestEntryListFiltersByDateRangeInclusive(t *testing.T) {
	repo, db := setupEntryRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	createTestEntry(t, db, "2025-01-01", nil, bookmaker.ID, 100)
	createTestEntry(t, db, "2025-01-10", nil, bookmaker.ID, 200)
	createTestEntry(t, db, "2025-01-20", nil, bookmaker.ID, 300)

	entries, err := repo.List(PerformanceEntryListFilter{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-20",
	})
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries want 2 got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Date < "2025-01-10" || entry.Date > "2025-01-20" {
			t.Fatalf("entry date %s outside range", entry.Date)
		}
	}
}

func TestEntryListPreloadsJoins(t *testing.T) {
	repo, db := setupEntryRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	team := &models.Team{Name: "Alpha"}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	createTestEntry(t, db, "2025-02-01", &team.ID, bookmaker.ID, 100)

	entries, err := repo.List(PerformanceEntryListFilter{WithJoins: true})
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries want 1 got %d", len(entries))
	}
	if entries[0].Team == nil || entries[0].Team.Name != "Alpha" {
		t.Fatalf("expected team preloaded, got %+v", entries[0].Team)
	}
	if entries[0].Bookmaker == nil || entries[0].Bookmaker.Name != "BetOne" {
		t.Fatalf("expected bookmaker preloaded, got %+v", entries[0].Bookmaker)
	}
}

func TestEntryListToleratesDanglingTeamReference(t *testing.T) {
	repo, db := setupEntryRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	team := &models.Team{Name: "Gone"}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	createTestEntry(t, db, "2025-02-01", &team.ID, bookmaker.ID, 100)
	if err := db.Where("id = ?", team.ID).Delete(&models.Team{}).Error; err != nil {
		t.Fatalf("delete team failed: %v", err)
	}

	entries, err := repo.List(PerformanceEntryListFilter{WithJoins: true})
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries want 1 got %d", len(entries))
	}
	if entries[0].Team != nil {
		t.Fatalf("dangling team reference should resolve to nil, got %+v", entries[0].Team)
	}
}

func TestEntryListRecentRespectsLimit(t *testing.T) {
	repo, db := setupEntryRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	for day := 1; day <= 15; day++ {
		createTestEntry(t, db, fmt.Sprintf("2025-03-%02d", day), nil, bookmaker.ID, int64(day))
	}

	// 补录一条历史日期的记录，录入时间最新
	backdated := createTestEntry(t, db, "2025-03-01", nil, bookmaker.ID, 999)
	err := db.Model(backdated).Update("created_at", time.Now().Add(time.Hour)).Error
	if err != nil {
		t.Fatalf("update created_at failed: %v", err)
	}

	entries, err := repo.ListRecent(10)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("recent want 10 got %d", len(entries))
	}
	if entries[0].ID != backdated.ID {
		t.Fatalf("recent first id want %s got %s", backdated.ID, entries[0].ID)
	}
	if entries[0].Date != "2025-03-01" {
		t.Fatalf("recent first date want 2025-03-01 got %s", entries[0].Date)
	}
}

func TestEntryDuplicateRowsAreKept(t *testing.T) {
	repo, db := setupEntryRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	team := &models.Team{Name: "Alpha"}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	createTestEntry(t, db, "2025-04-01", &team.ID, bookmaker.ID, 100)
	createTestEntry(t, db, "2025-04-01", &team.ID, bookmaker.ID, 150)

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count entries failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("duplicate rows want 2 got %d", count)
	}
}

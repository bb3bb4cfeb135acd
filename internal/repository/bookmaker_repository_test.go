package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/afftrack-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBookmakerRepositoryTest(t *testing.T) (*GormBookmakerRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Bookmaker{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewBookmakerRepository(db), db
}

func TestBookmakerListAlphabeticalAndActiveFilter(t *testing.T) {
	repo, db := setupBookmakerRepositoryTest(t)

	createTestBookmaker(t, db, "Zeta")
	createTestBookmaker(t, db, "Alpha")
	inactive := createTestBookmaker(t, db, "Mid")
	if _, err := repo.Deactivate(inactive.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	all, err := repo.List(false)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all want 3 got %d", len(all))
	}
	if all[0].Name != "Alpha" || all[1].Name != "Mid" || all[2].Name != "Zeta" {
		t.Fatalf("unexpected order: %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}

	active, err := repo.List(true)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active want 2 got %d", len(active))
	}
	for _, bookmaker := range active {
		if !bookmaker.Active {
			t.Fatalf("inactive bookmaker in active list: %s", bookmaker.Name)
		}
	}
}

func TestBookmakerDeactivateIsIdempotent(t *testing.T) {
	repo, db := setupBookmakerRepositoryTest(t)
	bookmaker := createTestBookmaker(t, db, "BetOne")

	affected, err := repo.Deactivate(bookmaker.ID)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("first deactivate affected want 1 got %d", affected)
	}

	affected, err = repo.Deactivate(bookmaker.ID)
	if err != nil {
		t.Fatalf("second deactivate failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second deactivate affected want 0 got %d", affected)
	}

	got, err := repo.GetByID(bookmaker.ID)
	if err != nil {
		t.Fatalf("get bookmaker failed: %v", err)
	}
	if got == nil || got.Active {
		t.Fatalf("bookmaker should stay inactive, got %+v", got)
	}
}

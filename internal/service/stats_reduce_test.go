package service

import (
	"testing"
	"time"

	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/models"

	"github.com/shopspring/decimal"
)

func moneyFromInt(value int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(value))
}

func makeEntry(date string, teamID, profileID *string, netRevenue int64) models.PerformanceEntry {
	return models.PerformanceEntry{
		Date:          date,
		TeamID:        teamID,
		ProfileID:     profileID,
		BookmakerID:   "bm-1",
		Registrations: 2,
		Deposits:      1,
		Revenue:       moneyFromInt(netRevenue * 2),
		NetRevenue:    moneyFromInt(netRevenue),
	}
}

func TestSumEntriesTotals(t *testing.T) {
	teamID := "team-1"
	entries := []models.PerformanceEntry{
		makeEntry("2025-05-01", &teamID, nil, 100),
		makeEntry("2025-05-02", &teamID, nil, 250),
	}

	totals := sumEntries(entries)
	if totals.Registrations != 4 {
		t.Fatalf("registrations want 4 got %d", totals.Registrations)
	}
	if totals.Deposits != 2 {
		t.Fatalf("deposits want 2 got %d", totals.Deposits)
	}
	if totals.NetRevenue.String() != "350.00" {
		t.Fatalf("net revenue want 350.00 got %s", totals.NetRevenue.String())
	}
	if totals.Revenue.String() != "700.00" {
		t.Fatalf("revenue want 700.00 got %s", totals.Revenue.String())
	}
}

func TestSumEntriesEmptyIsZero(t *testing.T) {
	totals := sumEntries(nil)
	if totals.Registrations != 0 || totals.Deposits != 0 {
		t.Fatalf("counts want 0 got %d/%d", totals.Registrations, totals.Deposits)
	}
	if totals.NetRevenue.String() != "0.00" {
		t.Fatalf("net revenue want 0.00 got %s", totals.NetRevenue.String())
	}
}

func TestLeaderboardSortsByNetRevenueDescWithNameTiebreak(t *testing.T) {
	alpha, beta, gamma := "team-a", "team-b", "team-c"
	names := map[string]string{alpha: "Alpha", beta: "Beta", gamma: "Gamma"}

	entries := []models.PerformanceEntry{
		makeEntry("2025-05-01", &beta, nil, 500),
		makeEntry("2025-05-01", &gamma, nil, 500),
		makeEntry("2025-05-01", &alpha, nil, 100),
	}

	rows := buildLeaderboard(entries, names, func(entry models.PerformanceEntry) *string {
		return entry.TeamID
	})
	if len(rows) != 3 {
		t.Fatalf("rows want 3 got %d", len(rows))
	}
	wantOrder := []string{"Beta", "Gamma", "Alpha"}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Fatalf("row %d name want %s got %s", i, want, rows[i].Name)
		}
		if rows[i].Rank != i+1 {
			t.Fatalf("row %d rank want %d got %d", i, i+1, rows[i].Rank)
		}
		if rows[i].Growth != 0 {
			t.Fatalf("row %d growth want 0 got %d", i, rows[i].Growth)
		}
	}
}

func TestLeaderboardIncludesEntitiesWithoutEntries(t *testing.T) {
	active, idle := "team-a", "team-b"
	names := map[string]string{active: "Active", idle: "Idle"}

	entries := []models.PerformanceEntry{
		makeEntry("2025-05-01", &active, nil, 50),
	}

	rows := buildLeaderboard(entries, names, func(entry models.PerformanceEntry) *string {
		return entry.TeamID
	})
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d", len(rows))
	}
	if rows[1].Name != "Idle" {
		t.Fatalf("last row want Idle got %s", rows[1].Name)
	}
	if rows[1].NetRevenue.String() != "0.00" {
		t.Fatalf("idle net revenue want 0.00 got %s", rows[1].NetRevenue.String())
	}
}

func TestLeaderboardSkipsDeletedEntities(t *testing.T) {
	known, deleted := "team-a", "team-gone"
	names := map[string]string{known: "Known"}

	entries := []models.PerformanceEntry{
		makeEntry("2025-05-01", &known, nil, 50),
		makeEntry("2025-05-01", &deleted, nil, 900),
	}

	rows := buildLeaderboard(entries, names, func(entry models.PerformanceEntry) *string {
		return entry.TeamID
	})
	if len(rows) != 1 {
		t.Fatalf("rows want 1 got %d", len(rows))
	}
	if rows[0].Name != "Known" {
		t.Fatalf("row name want Known got %s", rows[0].Name)
	}
}

func TestDailySeriesExactWindowZeroFilled(t *testing.T) {
	now, err := time.Parse(constants.DateLayout, "2025-05-30")
	if err != nil {
		t.Fatalf("parse now failed: %v", err)
	}

	teamID := "team-a"
	entries := []models.PerformanceEntry{
		makeEntry("2025-05-30", &teamID, nil, 10),
		makeEntry("2025-05-30", &teamID, nil, 5),
		makeEntry("2025-05-15", &teamID, nil, 7),
		makeEntry("2020-01-01", &teamID, nil, 999), // 窗口外
	}

	points := buildDailySeries(entries, now, 30)
	if len(points) != 30 {
		t.Fatalf("points want 30 got %d", len(points))
	}
	if points[0].Date != "2025-05-01" {
		t.Fatalf("first date want 2025-05-01 got %s", points[0].Date)
	}
	if points[29].Date != "2025-05-30" {
		t.Fatalf("last date want 2025-05-30 got %s", points[29].Date)
	}
	if points[29].Value.String() != "15.00" {
		t.Fatalf("last value want 15.00 got %s", points[29].Value.String())
	}
	for _, point := range points {
		switch point.Date {
		case "2025-05-30", "2025-05-15":
			continue
		}
		if point.Value.String() != "0.00" {
			t.Fatalf("date %s want 0.00 got %s", point.Date, point.Value.String())
		}
	}
}

func TestAcquisitionSplitSumsToHundred(t *testing.T) {
	direct := constants.LinkIdentifierDirectLink
	promo := constants.LinkIdentifierPromoCode
	teamID := "team-a"

	entries := []models.PerformanceEntry{
		{Date: "2025-05-01", TeamID: &teamID, BookmakerID: "bm-1", LinkIdentifier: &direct, Revenue: moneyFromInt(70)},
		{Date: "2025-05-01", TeamID: &teamID, BookmakerID: "bm-1", LinkIdentifier: &promo, Revenue: moneyFromInt(30)},
	}

	split := buildAcquisitionSplit(entries)
	if split.DirectLinkPct != 70 || split.PromoCodePct != 30 {
		t.Fatalf("split want 70/30 got %d/%d", split.DirectLinkPct, split.PromoCodePct)
	}
	if split.DirectLinkPct+split.PromoCodePct != 100 {
		t.Fatalf("split should sum to 100, got %d", split.DirectLinkPct+split.PromoCodePct)
	}
}

func TestAcquisitionSplitZeroTotal(t *testing.T) {
	split := buildAcquisitionSplit(nil)
	if split.DirectLinkPct != 0 || split.PromoCodePct != 0 {
		t.Fatalf("split want 0/0 got %d/%d", split.DirectLinkPct, split.PromoCodePct)
	}

	teamID := "team-a"
	entries := []models.PerformanceEntry{
		makeEntry("2025-05-01", &teamID, nil, 100), // 无获客方式标识
	}
	split = buildAcquisitionSplit(entries)
	if split.DirectLinkPct != 0 || split.PromoCodePct != 0 {
		t.Fatalf("untagged entries split want 0/0 got %d/%d", split.DirectLinkPct, split.PromoCodePct)
	}
}

func TestBookmakerBreakdownAttachesLinks(t *testing.T) {
	teamID := "team-a"
	linkURL := "https://betone.example/ref/a"
	promoCode := "CODE10"

	entries := []models.PerformanceEntry{
		{Date: "2025-05-01", TeamID: &teamID, BookmakerID: "bm-1", NetRevenue: moneyFromInt(10), Revenue: moneyFromInt(20)},
		{Date: "2025-05-01", TeamID: &teamID, BookmakerID: "bm-2", NetRevenue: moneyFromInt(90), Revenue: moneyFromInt(100)},
	}
	names := map[string]string{"bm-1": "BetOne", "bm-2": "BetTwo"}
	links := []models.AffiliateLink{
		{TeamID: &teamID, BookmakerID: "bm-1", AffiliateLink: &linkURL, PromoCode: &promoCode},
	}

	rows := buildBookmakerBreakdown(entries, names, links)
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d", len(rows))
	}
	if rows[0].BookmakerName != "BetTwo" {
		t.Fatalf("first row want BetTwo got %s", rows[0].BookmakerName)
	}
	if rows[0].AffiliateLink != nil {
		t.Fatalf("BetTwo should have no link, got %v", *rows[0].AffiliateLink)
	}
	if rows[1].AffiliateLink == nil || *rows[1].AffiliateLink != linkURL {
		t.Fatalf("BetOne link want %s got %+v", linkURL, rows[1].AffiliateLink)
	}
	if rows[1].PromoCode == nil || *rows[1].PromoCode != promoCode {
		t.Fatalf("BetOne promo want %s got %+v", promoCode, rows[1].PromoCode)
	}
}

func TestBookmakerBreakdownCoversActivePlatforms(t *testing.T) {
	teamID := "team-a"

	entries := []models.PerformanceEntry{
		{Date: "2025-05-01", TeamID: &teamID, BookmakerID: "bm-1", NetRevenue: moneyFromInt(40), Revenue: moneyFromInt(80)},
		{Date: "2025-05-01", TeamID: &teamID, BookmakerID: "bm-gone", NetRevenue: moneyFromInt(900), Revenue: moneyFromInt(1000)}, // 已下线
	}
	names := map[string]string{"bm-1": "BetOne", "bm-2": "BetTwo"}

	rows := buildBookmakerBreakdown(entries, names, nil)
	if len(rows) != 2 {
		t.Fatalf("rows want 2 got %d", len(rows))
	}
	if rows[0].BookmakerName != "BetOne" || rows[0].NetRevenue.String() != "40.00" {
		t.Fatalf("first row want BetOne/40.00 got %s/%s", rows[0].BookmakerName, rows[0].NetRevenue.String())
	}
	if rows[1].BookmakerName != "BetTwo" || rows[1].NetRevenue.String() != "0.00" {
		t.Fatalf("second row want BetTwo/0.00 got %s/%s", rows[1].BookmakerName, rows[1].NetRevenue.String())
	}
	for _, row := range rows {
		if row.BookmakerID == "bm-gone" {
			t.Fatalf("deactivated bookmaker should not appear, got %+v", row)
		}
	}
}

func TestLeaderboardRowEqualsFilteredSum(t *testing.T) {
	alpha, beta := "team-a", "team-b"
	names := map[string]string{alpha: "Alpha", beta: "Beta"}

	entries := []models.PerformanceEntry{
		makeEntry("2025-05-01", &alpha, nil, 120),
		makeEntry("2025-05-02", &beta, nil, 40),
		makeEntry("2025-05-03", &alpha, nil, 80),
		makeEntry("2025-05-04", nil, nil, 500), // 无归属
	}

	rows := buildLeaderboard(entries, names, func(entry models.PerformanceEntry) *string {
		return entry.TeamID
	})

	// 先按主体过滤再汇总，应与榜单行一致
	for _, row := range rows {
		filtered := make([]models.PerformanceEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.TeamID != nil && *entry.TeamID == row.ID {
				filtered = append(filtered, entry)
			}
		}
		want := sumEntries(filtered)
		if row.NetRevenue.String() != want.NetRevenue.String() {
			t.Fatalf("%s net revenue want %s got %s", row.Name, want.NetRevenue.String(), row.NetRevenue.String())
		}
		if row.Registrations != want.Registrations || row.Deposits != want.Deposits {
			t.Fatalf("%s counts want %d/%d got %d/%d", row.Name, want.Registrations, want.Deposits, row.Registrations, row.Deposits)
		}
	}
}

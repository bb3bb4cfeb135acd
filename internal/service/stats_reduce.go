package service

import (
	"sort"
	"time"

	"github.com/afftrack-next/internal/constants"
	"github.com/afftrack-next/internal/models"

	"github.com/shopspring/decimal"
)

// EntryTotals 绩效指标汇总
type EntryTotals struct {
	Registrations int          `json:"registrations"`
	Deposits      int          `json:"deposits"`
	Revenue       models.Money `json:"revenue"`
	NetRevenue    models.Money `json:"net_revenue"`
}

// LeaderboardRow 排行榜单行
type LeaderboardRow struct {
	Rank   int    `json:"rank"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Growth int    `json:"growth"`
	EntryTotals
}

// BookmakerBreakdownRow 单主体的平台维度汇总
type BookmakerBreakdownRow struct {
	BookmakerID   string  `json:"bookmaker_id"`
	BookmakerName string  `json:"bookmaker_name"`
	AffiliateLink *string `json:"affiliate_link,omitempty"`
	PromoCode     *string `json:"promo_code,omitempty"`
	EntryTotals
}

// SeriesPoint 趋势曲线单点
type SeriesPoint struct {
	Date  string       `json:"date"`
	Value models.Money `json:"value"`
}

// AcquisitionSplit 获客方式营收占比（整数百分比）
type AcquisitionSplit struct {
	DirectLinkPct int `json:"direct_link_pct"`
	PromoCodePct  int `json:"promo_code_pct"`
}

func zeroTotals() EntryTotals {
	return EntryTotals{
		Revenue:    models.NewMoneyFromDecimal(decimal.Zero),
		NetRevenue: models.NewMoneyFromDecimal(decimal.Zero),
	}
}

func (t *EntryTotals) add(entry models.PerformanceEntry) {
	t.Registrations += entry.Registrations
	t.Deposits += entry.Deposits
	t.Revenue = t.Revenue.Add(entry.Revenue)
	t.NetRevenue = t.NetRevenue.Add(entry.NetRevenue)
}

// sumEntries 汇总一组绩效记录
func sumEntries(entries []models.PerformanceEntry) EntryTotals {
	totals := zeroTotals()
	for _, entry := range entries {
		totals.add(entry)
	}
	return totals
}

// buildLeaderboard 按主体归组并按净收入倒序排名
// names 给出参与排名的主体全集；无记录的主体以零值入榜
// 并列时按名称升序，名次为连续的 1 基序号
func buildLeaderboard(entries []models.PerformanceEntry, names map[string]string, keyOf func(models.PerformanceEntry) *string) []LeaderboardRow {
	grouped := make(map[string]EntryTotals, len(names))
	for id := range names {
		grouped[id] = zeroTotals()
	}
	for _, entry := range entries {
		key := keyOf(entry)
		if key == nil {
			continue
		}
		if _, known := names[*key]; !known {
			// 主体已删除：不参与排行
			continue
		}
		totals := grouped[*key]
		totals.add(entry)
		grouped[*key] = totals
	}

	rows := make([]LeaderboardRow, 0, len(grouped))
	for id, totals := range grouped {
		rows = append(rows, LeaderboardRow{
			ID:          id,
			Name:        names[id],
			EntryTotals: totals,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		cmp := rows[i].NetRevenue.Decimal.Cmp(rows[j].NetRevenue.Decimal)
		if cmp != 0 {
			return cmp > 0
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// buildBookmakerBreakdown 按平台归组汇总，并附上主体的链接配置
// bookmakerNames 给出在架平台全集；无记录的平台以零值出现，下线平台不出现
func buildBookmakerBreakdown(entries []models.PerformanceEntry, bookmakerNames map[string]string, links []models.AffiliateLink) []BookmakerBreakdownRow {
	linkByBookmaker := make(map[string]models.AffiliateLink, len(links))
	for _, link := range links {
		linkByBookmaker[link.BookmakerID] = link
	}

	grouped := make(map[string]EntryTotals, len(bookmakerNames))
	for id := range bookmakerNames {
		grouped[id] = zeroTotals()
	}
	for _, entry := range entries {
		totals, known := grouped[entry.BookmakerID]
		if !known {
			// 平台已下线或删除：不参与汇总
			continue
		}
		totals.add(entry)
		grouped[entry.BookmakerID] = totals
	}

	rows := make([]BookmakerBreakdownRow, 0, len(grouped))
	for bookmakerID, totals := range grouped {
		row := BookmakerBreakdownRow{
			BookmakerID:   bookmakerID,
			BookmakerName: bookmakerNames[bookmakerID],
			EntryTotals:   totals,
		}
		if link, ok := linkByBookmaker[bookmakerID]; ok {
			row.AffiliateLink = link.AffiliateLink
			row.PromoCode = link.PromoCode
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		cmp := rows[i].NetRevenue.Decimal.Cmp(rows[j].NetRevenue.Decimal)
		if cmp != 0 {
			return cmp > 0
		}
		return rows[i].BookmakerName < rows[j].BookmakerName
	})
	return rows
}

// buildDailySeries 截至 now 的逐日净收入曲线，缺失日期补零
func buildDailySeries(entries []models.PerformanceEntry, now time.Time, days int) []SeriesPoint {
	if days <= 0 {
		days = constants.DefaultStatsWindowDays
	}

	byDate := make(map[string]decimal.Decimal, days)
	for _, entry := range entries {
		byDate[entry.Date] = byDate[entry.Date].Add(entry.NetRevenue.Decimal)
	}

	points := make([]SeriesPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset).Format(constants.DateLayout)
		points = append(points, SeriesPoint{
			Date:  date,
			Value: models.NewMoneyFromDecimal(byDate[date]),
		})
	}
	return points
}

// buildAcquisitionSplit 按获客方式拆分营收占比
// 总营收为零时两边都是 0，否则两个整数百分比之和为 100
func buildAcquisitionSplit(entries []models.PerformanceEntry) AcquisitionSplit {
	direct := decimal.Zero
	total := decimal.Zero
	for _, entry := range entries {
		if entry.LinkIdentifier == nil {
			continue
		}
		switch *entry.LinkIdentifier {
		case constants.LinkIdentifierDirectLink:
			direct = direct.Add(entry.Revenue.Decimal)
			total = total.Add(entry.Revenue.Decimal)
		case constants.LinkIdentifierPromoCode:
			total = total.Add(entry.Revenue.Decimal)
		}
	}

	if total.IsZero() {
		return AcquisitionSplit{}
	}

	directPct := int(direct.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	if directPct < 0 {
		directPct = 0
	}
	if directPct > 100 {
		directPct = 100
	}
	return AcquisitionSplit{
		DirectLinkPct: directPct,
		PromoCodePct:  100 - directPct,
	}
}

package summary_service

import (
	"fmt"
	"time"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/reporting"
	"github.com/varejotech/caixa/types"
)

// DefaultWindowMonths is the range warmed into redis by the cache cron.
const DefaultWindowMonths = 12

var CacheTTL = 2 * time.Hour

func CacheKey(store_id int64) string {
	return fmt.Sprintf("caixa:%d:summary", store_id)
}

type serviceLineRow struct {
	CashBoxID     int64
	ServiceTypeID int64
	Name          string
	GrossCounted  bool
	AmountCents   int64
}

func serviceLinesFor(tx_where string, args ...interface{}) []serviceLineRow {
	var rows []serviceLineRow

	config.DataBase.
		Model(&models.CashBoxService{}).
		Select("cash_box_services.cash_box_id, cash_box_services.service_type_id, service_types.name, service_types.gross_counted, cash_box_services.amount_cents").
		Joins("JOIN service_types ON service_types.id = cash_box_services.service_type_id").
		Joins("JOIN cash_boxes ON cash_boxes.id = cash_box_services.cash_box_id").
		Where(tx_where, args...).
		Find(&rows)

	return rows
}

// LoadRecords flattens a store's cash boxes in [from, to] into reporting
// records, one query per child table.
func LoadRecords(store_id int64, from, to time.Time) []reporting.BoxRecord {
	var boxes []*models.CashBox

	config.DataBase.
		Where("store_id = ? AND date >= ? AND date <= ?", store_id, from, to).
		Order("date asc").
		Find(&boxes)

	if len(boxes) == 0 {
		return nil
	}

	box_ids := make([]int64, 0, len(boxes))
	for _, box := range boxes {
		box_ids = append(box_ids, box.ID)
	}

	lines_by_box := make(map[int64][]reporting.ServiceLine)
	for _, row := range serviceLinesFor("cash_box_services.cash_box_id IN ?", box_ids) {
		lines_by_box[row.CashBoxID] = append(lines_by_box[row.CashBoxID], reporting.ServiceLine{
			ServiceTypeID: row.ServiceTypeID,
			Name:          row.Name,
			GrossCounted:  row.GrossCounted,
			AmountCents:   row.AmountCents,
		})
	}

	var entries []*models.ElectronicEntry
	config.DataBase.Where("cash_box_id IN ?", box_ids).Find(&entries)

	entries_by_box := make(map[int64][]reporting.EntryLine)
	for _, entry := range entries {
		entries_by_box[entry.CashBoxID] = append(entries_by_box[entry.CashBoxID], reporting.EntryLine{
			Kind:        entry.Kind,
			AmountCents: entry.AmountCents,
		})
	}

	var expenses []*models.Expense
	config.DataBase.Where("cash_box_id IN ?", box_ids).Find(&expenses)

	expenses_by_box := make(map[int64]int64)
	for _, expense := range expenses {
		expenses_by_box[expense.CashBoxID] += expense.AmountCents
	}

	records := make([]reporting.BoxRecord, 0, len(boxes))
	for _, box := range boxes {
		records = append(records, reporting.BoxRecord{
			Month:        box.MonthKey(),
			Services:     lines_by_box[box.ID],
			Entries:      entries_by_box[box.ID],
			ExpenseCents: expenses_by_box[box.ID],
		})
	}

	return records
}

// MonthsBetween lists every YYYY-MM key touched by the range, inclusive.
func MonthsBetween(from, to time.Time) []types.MonthKey {
	var months []types.MonthKey

	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cursor.After(end) {
		months = append(months, cursor.Format("2006-01"))
		cursor = cursor.AddDate(0, 1, 0)
	}

	return months
}

// ExpandFixedCharges applies a store's active fixed expenses to every month in
// the range, so a month without register activity still carries its costs.
func ExpandFixedCharges(store_id int64, from, to time.Time) []reporting.FixedCharge {
	store := models.GetStoreByID(store_id)
	if store == nil {
		return nil
	}

	var monthly_total int64
	for _, fixed_expense := range store.FixedExpenses() {
		monthly_total += fixed_expense.AmountCents
	}

	if monthly_total == 0 {
		return nil
	}

	var charges []reporting.FixedCharge
	for _, month := range MonthsBetween(from, to) {
		charges = append(charges, reporting.FixedCharge{Month: month, AmountCents: monthly_total})
	}

	return charges
}

func Compute(store_id int64, from, to time.Time) []reporting.MonthlySummary {
	records := LoadRecords(store_id, from, to)
	fixed := ExpandFixedCharges(store_id, from, to)

	return reporting.Summarize(records, fixed)
}

// DefaultWindow is the trailing year, month-aligned.
func DefaultWindow(now time.Time) (time.Time, time.Time) {
	to := now
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(DefaultWindowMonths - 1), 0)

	return from, to
}

// Fetch serves the default window from redis when warm, recomputing on miss.
// An empty window is cached like any other, so a store with no activity does
// not recompute on every request.
func Fetch(store_id int64) []reporting.MonthlySummary {
	var summaries []reporting.MonthlySummary

	if err := config.Redis.GetKey(CacheKey(store_id), &summaries); err == nil {
		return summaries
	}

	from, to := DefaultWindow(time.Now())
	summaries = Compute(store_id, from, to)

	if err := config.Redis.SetKey(CacheKey(store_id), summaries, CacheTTL); err != nil {
		config.Logger.Warnf("summary cache set failed for store %d: %v", store_id, err)
	}

	return summaries
}

// Invalidate drops the warmed window after a cash box write.
func Invalidate(store_id int64) {
	if err := config.Redis.DeleteKey(CacheKey(store_id)); err != nil {
		config.Logger.Warnf("summary cache invalidate failed for store %d: %v", store_id, err)
	}
}

// MonthServiceLines loads a month's service lines for Pareto analysis.
func MonthServiceLines(store_id int64, month types.MonthKey) []reporting.ServiceLine {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil
	}
	end := start.AddDate(0, 1, -1)

	rows := serviceLinesFor(
		"cash_boxes.store_id = ? AND cash_boxes.date >= ? AND cash_boxes.date <= ?",
		store_id, start, end,
	)

	lines := make([]reporting.ServiceLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, reporting.ServiceLine{
			ServiceTypeID: row.ServiceTypeID,
			Name:          row.Name,
			GrossCounted:  row.GrossCounted,
			AmountCents:   row.AmountCents,
		})
	}

	return lines
}

// MonthSummary computes the single-month row used by the waterfall and the
// PDF export.
func MonthSummary(store_id int64, month types.MonthKey) *reporting.MonthlySummary {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil
	}
	end := start.AddDate(0, 1, -1)

	summaries := Compute(store_id, start, end)
	for i := range summaries {
		if summaries[i].Month == month {
			return &summaries[i]
		}
	}

	return nil
}

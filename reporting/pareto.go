package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ParetoEntry is one service type's slice of a month's revenue. Share and
// Cumulative are percentages rounded to two places.
type ParetoEntry struct {
	ServiceTypeID int64           `json:"service_type_id"`
	Name          string          `json:"name"`
	AmountCents   int64           `json:"amount_cents"`
	Share         decimal.Decimal `json:"share"`
	Cumulative    decimal.Decimal `json:"cumulative"`
}

// Pareto groups service lines by type, sorts descending by revenue and
// normalizes to percentage shares with a running cumulative.
func Pareto(lines []ServiceLine) []ParetoEntry {
	totals := make(map[int64]*ParetoEntry)
	var total int64

	for _, line := range lines {
		total += line.AmountCents

		entry, found := totals[line.ServiceTypeID]
		if !found {
			entry = &ParetoEntry{ServiceTypeID: line.ServiceTypeID, Name: line.Name}
			totals[line.ServiceTypeID] = entry
		}
		entry.AmountCents += line.AmountCents
	}

	entries := make([]ParetoEntry, 0, len(totals))
	for _, entry := range totals {
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AmountCents != entries[j].AmountCents {
			return entries[i].AmountCents > entries[j].AmountCents
		}
		return entries[i].ServiceTypeID < entries[j].ServiceTypeID
	})

	if total == 0 {
		return entries
	}

	dTotal := decimal.NewFromInt(total)
	cumulative := decimal.Zero

	for i := range entries {
		share := decimal.NewFromInt(entries[i].AmountCents).
			Mul(oneHundred).
			DivRound(dTotal, 2)
		cumulative = cumulative.Add(share)

		entries[i].Share = share
		entries[i].Cumulative = cumulative
	}

	return entries
}

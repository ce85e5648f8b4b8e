package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/varejotech/caixa/types"
)

// ServiceLine is one service sold on a box, denormalized with its catalog
// flags so the reducer never touches the database.
type ServiceLine struct {
	ServiceTypeID int64
	Name          string
	GrossCounted  bool
	AmountCents   int64
}

type EntryLine struct {
	Kind        types.EntryKind
	AmountCents int64
}

// BoxRecord is one cash box flattened for aggregation.
type BoxRecord struct {
	Month        types.MonthKey
	Services     []ServiceLine
	Entries      []EntryLine
	ExpenseCents int64
}

// FixedCharge is a recurring expense already expanded to a concrete month.
type FixedCharge struct {
	Month       types.MonthKey
	AmountCents int64
}

// MonthlySummary is one output row of the reduction. NetCents is
// gross + other - variable - fixed; Margin is net over gross, zero when the
// month had no gross revenue.
type MonthlySummary struct {
	Month                types.MonthKey  `json:"month"`
	BoxCount             int64           `json:"box_count"`
	GrossCents           int64           `json:"gross_cents"`
	OtherCents           int64           `json:"other_cents"`
	PixCents             int64           `json:"pix_cents"`
	DebitCents           int64           `json:"debit_cents"`
	CreditCents          int64           `json:"credit_cents"`
	VariableExpenseCents int64           `json:"variable_expense_cents"`
	FixedExpenseCents    int64           `json:"fixed_expense_cents"`
	NetCents             int64           `json:"net_cents"`
	Margin               decimal.Decimal `json:"margin"`
}

// Summarize reduces cash boxes and fixed charges into per-month rows, sorted
// descending by month key. A month that appears only in fixed charges still
// produces a row.
func Summarize(records []BoxRecord, fixed []FixedCharge) []MonthlySummary {
	ledger := NewLedger()

	for _, record := range records {
		ledger.Add(record)
	}

	for _, charge := range fixed {
		ledger.AddFixed(charge)
	}

	return ledger.Summaries()
}

package reporting

import (
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/shopspring/decimal"
	"github.com/varejotech/caixa/types"
)

// monthComparator orders YYYY-MM keys descending, so tree iteration yields the
// newest month first.
func monthComparator(a, b interface{}) int {
	ka := a.(string)
	kb := b.(string)

	switch {
	case ka > kb:
		return -1
	case ka < kb:
		return 1
	default:
		return 0
	}
}

type monthBucket struct {
	summary MonthlySummary
}

// Ledger accumulates per-month aggregates in a red-black tree keyed by month,
// so summaries come out already sorted.
type Ledger struct {
	ledgerMutex sync.RWMutex

	Months *redblacktree.Tree
}

func NewLedger() *Ledger {
	return &Ledger{
		Months: redblacktree.NewWith(monthComparator),
	}
}

func (l *Ledger) bucket(month types.MonthKey) *monthBucket {
	value, found := l.Months.Get(month)

	if !found {
		b := &monthBucket{summary: MonthlySummary{Month: month, Margin: decimal.Zero}}
		l.Months.Put(month, b)
		return b
	}

	return value.(*monthBucket)
}

func (l *Ledger) Add(record BoxRecord) {
	l.ledgerMutex.Lock()
	defer l.ledgerMutex.Unlock()

	b := l.bucket(record.Month)
	b.summary.BoxCount++
	b.summary.VariableExpenseCents += record.ExpenseCents

	for _, service := range record.Services {
		if service.GrossCounted {
			b.summary.GrossCents += service.AmountCents
		} else {
			b.summary.OtherCents += service.AmountCents
		}
	}

	for _, entry := range record.Entries {
		switch entry.Kind {
		case types.KindPix:
			b.summary.PixCents += entry.AmountCents
		case types.KindDebit:
			b.summary.DebitCents += entry.AmountCents
		case types.KindCredit:
			b.summary.CreditCents += entry.AmountCents
		}
	}
}

func (l *Ledger) AddFixed(charge FixedCharge) {
	l.ledgerMutex.Lock()
	defer l.ledgerMutex.Unlock()

	b := l.bucket(charge.Month)
	b.summary.FixedExpenseCents += charge.AmountCents
}

// Summaries closes out every bucket and returns the rows in tree order
// (descending month).
func (l *Ledger) Summaries() []MonthlySummary {
	l.ledgerMutex.RLock()
	defer l.ledgerMutex.RUnlock()

	summaries := make([]MonthlySummary, 0, l.Months.Size())

	it := l.Months.Iterator()
	for it.Next() {
		b := it.Value().(*monthBucket)
		s := b.summary

		s.NetCents = s.GrossCents + s.OtherCents - s.VariableExpenseCents - s.FixedExpenseCents
		if s.GrossCents > 0 {
			s.Margin = decimal.NewFromInt(s.NetCents).
				DivRound(decimal.NewFromInt(s.GrossCents), 4)
		} else {
			s.Margin = decimal.Zero
		}

		summaries = append(summaries, s)
	}

	return summaries
}

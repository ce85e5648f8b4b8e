package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParetoSharesAndOrder(t *testing.T) {
	lines := []ServiceLine{
		{ServiceTypeID: 1, Name: "Wash", GrossCounted: true, AmountCents: 2000},
		{ServiceTypeID: 2, Name: "Detailing", GrossCounted: true, AmountCents: 5000},
		{ServiceTypeID: 1, Name: "Wash", GrossCounted: true, AmountCents: 1000},
		{ServiceTypeID: 3, Name: "Voucher", GrossCounted: false, AmountCents: 2000},
	}

	entries := Pareto(lines)

	assert.Len(t, entries, 3)
	assert.Equal(t, int64(2), entries[0].ServiceTypeID)
	assert.Equal(t, int64(5000), entries[0].AmountCents)
	assert.Equal(t, int64(1), entries[1].ServiceTypeID)
	assert.Equal(t, int64(3000), entries[1].AmountCents)

	// Shares sum to 100 and cumulative is monotonic, ending at 100.
	total := decimal.Zero
	prev := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Share)
		assert.True(t, entry.Cumulative.GreaterThanOrEqual(prev))
		prev = entry.Cumulative
	}
	assert.Equal(t, "100", total.String())
	assert.Equal(t, "100", entries[len(entries)-1].Cumulative.String())
}

func TestParetoTieBreaksByServiceType(t *testing.T) {
	lines := []ServiceLine{
		{ServiceTypeID: 9, Name: "B", AmountCents: 1000},
		{ServiceTypeID: 4, Name: "A", AmountCents: 1000},
	}

	entries := Pareto(lines)

	assert.Equal(t, int64(4), entries[0].ServiceTypeID)
	assert.Equal(t, int64(9), entries[1].ServiceTypeID)
}

func TestParetoEmpty(t *testing.T) {
	assert.Empty(t, Pareto(nil))
}

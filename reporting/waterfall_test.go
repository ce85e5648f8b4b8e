package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaterfallRunsToNet(t *testing.T) {
	summary := MonthlySummary{
		Month:                "2026-05",
		GrossCents:           15000,
		OtherCents:           2000,
		VariableExpenseCents: 3000,
		FixedExpenseCents:    4000,
		NetCents:             10000,
	}

	steps := Waterfall(summary)

	assert.Len(t, steps, 5)
	assert.Equal(t, "gross_revenue", steps[0].Label)
	assert.Equal(t, int64(15000), steps[0].RunningCents)
	assert.Equal(t, int64(17000), steps[1].RunningCents)
	assert.Equal(t, int64(14000), steps[2].RunningCents)
	assert.Equal(t, int64(10000), steps[3].RunningCents)

	last := steps[len(steps)-1]
	assert.Equal(t, "net_result", last.Label)
	assert.Equal(t, summary.NetCents, last.RunningCents)
	assert.Equal(t, summary.NetCents, last.DeltaCents)
}

func TestWaterfallNegativeResult(t *testing.T) {
	summary := MonthlySummary{
		Month:             "2026-04",
		FixedExpenseCents: 3000,
		NetCents:          -3000,
	}

	steps := Waterfall(summary)

	assert.Equal(t, int64(-3000), steps[len(steps)-1].RunningCents)
}

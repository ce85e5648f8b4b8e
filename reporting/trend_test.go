package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMarginTrendChronological(t *testing.T) {
	summaries := []MonthlySummary{
		{Month: "2026-06", Margin: decimal.RequireFromString("0.4")},
		{Month: "2026-04", Margin: decimal.RequireFromString("0.2")},
		{Month: "2026-05", Margin: decimal.RequireFromString("0.3")},
	}

	points := MarginTrend(summaries)

	assert.Len(t, points, 3)
	assert.Equal(t, "2026-04", points[0].Month)
	assert.Equal(t, "2026-05", points[1].Month)
	assert.Equal(t, "2026-06", points[2].Month)
	assert.Equal(t, "0.3", points[1].Margin.String())
}

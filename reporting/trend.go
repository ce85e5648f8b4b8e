package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/varejotech/caixa/types"
)

type MarginPoint struct {
	Month  types.MonthKey  `json:"month"`
	Margin decimal.Decimal `json:"margin"`
}

// MarginTrend projects summaries onto a chronological margin series. Input
// order does not matter; output is ascending by month, the way a trend chart
// reads.
func MarginTrend(summaries []MonthlySummary) []MarginPoint {
	points := make([]MarginPoint, 0, len(summaries))

	for _, s := range summaries {
		points = append(points, MarginPoint{Month: s.Month, Margin: s.Margin})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})

	return points
}

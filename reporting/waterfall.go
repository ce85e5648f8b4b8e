package reporting

// WaterfallStep is one bar of the revenue-to-result breakdown. RunningCents
// carries the total after the step's delta is applied; the last step always
// lands on the month's net result.
type WaterfallStep struct {
	Label        string `json:"label"`
	DeltaCents   int64  `json:"delta_cents"`
	RunningCents int64  `json:"running_cents"`
}

// Waterfall expands a monthly summary into running totals:
// gross -> +other -> -variable -> -fixed -> net.
func Waterfall(s MonthlySummary) []WaterfallStep {
	steps := make([]WaterfallStep, 0, 5)
	running := int64(0)

	push := func(label string, delta int64) {
		running += delta
		steps = append(steps, WaterfallStep{Label: label, DeltaCents: delta, RunningCents: running})
	}

	push("gross_revenue", s.GrossCents)
	push("other_revenue", s.OtherCents)
	push("variable_expenses", -s.VariableExpenseCents)
	push("fixed_expenses", -s.FixedExpenseCents)
	push("net_result", 0)

	// The closing bar restates the running total instead of moving it.
	steps[len(steps)-1].DeltaCents = running

	return steps
}

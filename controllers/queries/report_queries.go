package queries

import "github.com/varejotech/caixa/controllers/helpers"

type ReportFilters struct {
	StoreID int64  `query:"store_id"`
	Month   string `query:"month" validate:"ValidateMonth"`
}

func (t ReportFilters) ValidateMonth(val string) bool {
	if len(val) == 0 {
		return true
	}

	_, ok := helpers.ParseMonth(val)

	return ok
}

func (t ReportFilters) Messages() map[string]string {
	return map[string]string{
		"ValidateMonth": "report.invalid_month",
	}
}

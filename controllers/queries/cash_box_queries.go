package queries

import (
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/types"
)

type CashBoxFilters struct {
	StoreID  int64         `query:"store_id"`
	DateFrom string        `query:"date_from" validate:"ValidateDate"`
	DateTo   string        `query:"date_to" validate:"ValidateDate"`
	Limit    int           `query:"limit" validate:"uint"`
	Page     int           `query:"page" validate:"uint"`
	OrderBy  types.OrderBy `query:"order_by" validate:"ValidateOrderBy"`
}

func (t CashBoxFilters) ValidateOrderBy(val types.OrderBy) bool {
	return helpers.ValidateOrderBy(val)
}

func (t CashBoxFilters) ValidateDate(val string) bool {
	if len(val) == 0 {
		return true
	}

	_, ok := helpers.ParseDate(val)

	return ok
}

func (t CashBoxFilters) Messages() map[string]string {
	return map[string]string{
		"ValidateOrderBy": "cashbox.invalid_order_by",
		"ValidateDate":    "cashbox.invalid_date",
		"uint":            "cashbox.invalid_{field}",
	}
}

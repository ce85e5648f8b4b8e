package queries

import (
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/types"
)

type ReceivableFilters struct {
	StoreID int64                  `query:"store_id"`
	Status  types.ReceivableStatus `query:"status" validate:"ValidateStatus"`
	Limit   int                    `query:"limit" validate:"uint"`
	Page    int                    `query:"page" validate:"uint"`
	OrderBy types.OrderBy          `query:"order_by" validate:"ValidateOrderBy"`
}

func (t ReceivableFilters) ValidateStatus(val types.ReceivableStatus) bool {
	return len(val) == 0 || helpers.ValidateReceivableStatus(val)
}

func (t ReceivableFilters) ValidateOrderBy(val types.OrderBy) bool {
	return helpers.ValidateOrderBy(val)
}

func (t ReceivableFilters) Messages() map[string]string {
	return map[string]string{
		"ValidateStatus":  "receivable.invalid_status",
		"ValidateOrderBy": "receivable.invalid_order_by",
		"uint":            "receivable.invalid_{field}",
	}
}

type UpdateReceivableStatusParams struct {
	Status types.ReceivableStatus `json:"status" form:"status" validate:"required|ValidateStatus"`
}

func (t UpdateReceivableStatusParams) ValidateStatus(val types.ReceivableStatus) bool {
	return helpers.ValidateReceivableStatus(val)
}

func (t UpdateReceivableStatusParams) Messages() map[string]string {
	return map[string]string{
		"required":       "receivable.invalid_status",
		"ValidateStatus": "receivable.invalid_status",
	}
}

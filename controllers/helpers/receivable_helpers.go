package helpers

import (
	"github.com/gookit/validate"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/types"
)

type CreateReceivableParams struct {
	StoreID       int64  `json:"store_id" form:"store_id" validate:"required"`
	ServiceTypeID int64  `json:"service_type_id" form:"service_type_id" validate:"required"`
	CustomerName  string `json:"customer_name" form:"customer_name" validate:"required"`
	AmountCents   int64  `json:"amount_cents" form:"amount_cents" validate:"required"`
	DueDate       string `json:"due_date" form:"due_date" validate:"required|VaildateDueDate"`
}

func (p CreateReceivableParams) Messages() map[string]string {
	return validate.MS{
		"required":        "receivable.invalid_{field}",
		"VaildateDueDate": "receivable.invalid_due_date",
	}
}

func (p CreateReceivableParams) VaildateDueDate(due_date string) bool {
	_, ok := ParseDate(due_date)

	return ok
}

func (p CreateReceivableParams) CreateReceivable(err_src *Errors) *models.Receivable {
	due_date, _ := ParseDate(p.DueDate)

	receivable := &models.Receivable{
		StoreID:       p.StoreID,
		ServiceTypeID: p.ServiceTypeID,
		CustomerName:  p.CustomerName,
		AmountCents:   p.AmountCents,
		Status:        types.ReceivableOpen,
		DueDate:       due_date,
	}
	Vaildate(receivable, err_src)

	if err_src.Size() > 0 {
		return nil
	}

	if err := config.DataBase.Create(receivable).Error; err != nil {
		err_src.Errors = append(err_src.Errors, "receivable.create.failed")

		return nil
	}

	return receivable
}

func ValidateReceivableStatus(status types.ReceivableStatus) bool {
	switch status {
	case types.ReceivableOpen, types.ReceivablePendingWriteOff, types.ReceivableWrittenOff, types.ReceivableSettled:
		return true
	}

	return false
}

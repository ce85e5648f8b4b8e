package models

import (
	"time"

	"github.com/gookit/validate"
	"github.com/varejotech/caixa/config"
)

// FixedExpense is a recurring monthly cost for a store (rent, payroll). It is
// merged into every month of a summary regardless of register activity.
type FixedExpense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	StoreID     int64     `json:"store_id" gorm:"index" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	AmountCents int64     `json:"amount_cents" validate:"AmountVaildator"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f FixedExpense) Messages() map[string]string {
	return validate.MS{
		"required":        "admin.fixed_expense.invalid_{field}",
		"AmountVaildator": "admin.fixed_expense.non_positive_amount",
	}
}

func (f FixedExpense) AmountVaildator(amount_cents int64) bool {
	return amount_cents > 0
}

func GetFixedExpenseByID(id int64) *FixedExpense {
	var fixed_expense *FixedExpense

	if result := config.DataBase.First(&fixed_expense, id); result.Error != nil {
		return nil
	}

	return fixed_expense
}

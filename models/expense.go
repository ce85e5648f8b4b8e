package models

import (
	"time"

	"github.com/gookit/validate"
)

// Expense is a variable expense paid out of a cash box during the day.
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CashBoxID   int64     `json:"cash_box_id" gorm:"index"`
	Description string    `json:"description" validate:"required"`
	AmountCents int64     `json:"amount_cents" validate:"AmountVaildator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e Expense) Messages() map[string]string {
	return validate.MS{
		"required":        "cashbox.expense.invalid_{field}",
		"AmountVaildator": "cashbox.expense.non_positive_amount",
	}
}

func (e Expense) AmountVaildator(amount_cents int64) bool {
	return amount_cents > 0
}

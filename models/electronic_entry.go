package models

import (
	"database/sql"
	"time"

	"github.com/gookit/validate"
	"github.com/varejotech/caixa/types"
)

// ElectronicEntry is one PIX or card receipt recorded against a cash box.
type ElectronicEntry struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	CashBoxID   int64           `json:"cash_box_id" gorm:"index"`
	Kind        types.EntryKind `json:"kind" validate:"required|KindVaildator"`
	AmountCents int64           `json:"amount_cents" validate:"AmountVaildator"`
	Reference   sql.NullString  `json:"reference"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (e ElectronicEntry) Messages() map[string]string {
	return validate.MS{
		"required":        "cashbox.entry.invalid_{field}",
		"KindVaildator":   "cashbox.entry.invalid_kind",
		"AmountVaildator": "cashbox.entry.non_positive_amount",
	}
}

func (e ElectronicEntry) KindVaildator(kind types.EntryKind) bool {
	return kind == types.KindPix || kind == types.KindDebit || kind == types.KindCredit
}

func (e ElectronicEntry) AmountVaildator(amount_cents int64) bool {
	return amount_cents > 0
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/varejotech/caixa/types"
)

type CashBoxServiceEntity struct {
	ServiceTypeID int64  `json:"service_type_id"`
	ServiceName   string `json:"service_name"`
	Quantity      int32  `json:"quantity"`
	AmountCents   int64  `json:"amount_cents"`
}

type ElectronicEntryEntity struct {
	Kind        types.EntryKind `json:"kind"`
	AmountCents int64           `json:"amount_cents"`
	Reference   string          `json:"reference,omitempty"`
}

type ExpenseEntity struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
}

type CashBoxEntity struct {
	UUID         uuid.UUID               `json:"uuid"`
	StoreID      int64                   `json:"store_id"`
	Date         string                  `json:"date"`
	Note         string                  `json:"note,omitempty"`
	GrossCents   int64                   `json:"gross_cents"`
	ExpenseCents int64                   `json:"expense_cents"`
	Services     []CashBoxServiceEntity  `json:"services"`
	Entries      []ElectronicEntryEntity `json:"entries"`
	Expenses     []ExpenseEntity         `json:"expenses"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

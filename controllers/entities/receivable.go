package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/varejotech/caixa/types"
)

type ReceivableEntity struct {
	UUID          uuid.UUID              `json:"uuid"`
	StoreID       int64                  `json:"store_id"`
	ServiceTypeID int64                  `json:"service_type_id"`
	CustomerName  string                 `json:"customer_name"`
	AmountCents   int64                  `json:"amount_cents"`
	Status        types.ReceivableStatus `json:"status"`
	DueDate       string                 `json:"due_date"`
	SettledAt     *time.Time             `json:"settled_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/types"
)

var ErrInvalidTransition = errors.New("receivable.invalid_transition")

// Receivable is a customer debt recorded against a store. Lifecycle:
// open -> pending_write_off -> written_off, and open/pending -> settled once
// the customer pays.
type Receivable struct {
	ID            int64                  `json:"id" gorm:"primaryKey"`
	UUID          uuid.UUID              `json:"uuid" gorm:"default:gen_random_uuid()"`
	StoreID       int64                  `json:"store_id" gorm:"index" validate:"required"`
	ServiceTypeID int64                  `json:"service_type_id" validate:"required|ServiceTypeVaildator"`
	CustomerName  string                 `json:"customer_name" validate:"required"`
	AmountCents   int64                  `json:"amount_cents" validate:"AmountVaildator"`
	Status        types.ReceivableStatus `json:"status" gorm:"default:open"`
	DueDate       time.Time              `json:"due_date" gorm:"type:date"`
	SettledAt     sql.NullTime           `json:"settled_at"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func (r Receivable) Messages() map[string]string {
	return validate.MS{
		"required":             "receivable.invalid_{field}",
		"ServiceTypeVaildator": "receivable.unknown_service_type",
		"AmountVaildator":      "receivable.non_positive_amount",
	}
}

func (r Receivable) ServiceTypeVaildator(service_type_id int64) bool {
	return GetServiceTypeByID(service_type_id) != nil
}

func (r Receivable) AmountVaildator(amount_cents int64) bool {
	return amount_cents > 0
}

var receivable_transitions = map[types.ReceivableStatus][]types.ReceivableStatus{
	types.ReceivableOpen:            {types.ReceivablePendingWriteOff, types.ReceivableSettled},
	types.ReceivablePendingWriteOff: {types.ReceivableWrittenOff, types.ReceivableSettled, types.ReceivableOpen},
	types.ReceivableWrittenOff:      {},
	types.ReceivableSettled:         {},
}

func (r *Receivable) CanTransitionTo(status types.ReceivableStatus) bool {
	for _, allowed := range receivable_transitions[r.Status] {
		if allowed == status {
			return true
		}
	}

	return false
}

// TransitionTo moves the receivable through its lifecycle. The update is
// guarded on the status the caller read, so of two concurrent transitions
// only one lands; the loser reports an invalid transition. The pool runs
// autocommit (SkipDefaultTransaction), which makes the single guarded
// statement the serialization point.
func (r *Receivable) TransitionTo(status types.ReceivableStatus) error {
	if !r.CanTransitionTo(status) {
		return ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": status}
	if status == types.ReceivableSettled {
		updates["settled_at"] = sql.NullTime{Time: time.Now(), Valid: true}
	}

	result := config.DataBase.Model(&Receivable{}).
		Where("id = ? AND status = ?", r.ID, r.Status).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvalidTransition
	}

	r.Status = status
	if settled_at, ok := updates["settled_at"].(sql.NullTime); ok {
		r.SettledAt = settled_at
	}

	return nil
}

func (r *Receivable) IsOverdue(now time.Time) bool {
	return r.Status == types.ReceivableOpen && r.DueDate.Before(now.Truncate(24*time.Hour))
}

func GetReceivableByUUID(id uuid.UUID) *Receivable {
	var receivable *Receivable

	if result := config.DataBase.First(&receivable, "uuid = ?", id); result.Error != nil {
		return nil
	}

	return receivable
}

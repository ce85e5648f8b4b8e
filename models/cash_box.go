package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/types"
)

// CashBox is one day of register activity for one store. The store_id+date
// pair is unique, enforced by the database index.
type CashBox struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UUID       uuid.UUID `json:"uuid" gorm:"default:gen_random_uuid()"`
	StoreID    int64     `json:"store_id" gorm:"uniqueIndex:idx_cash_boxes_store_date" validate:"required"`
	Date       time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_cash_boxes_store_date"`
	OpenedByID int64     `json:"opened_by_id"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (cb *CashBox) MonthKey() types.MonthKey {
	return cb.Date.Format("2006-01")
}

func (cb *CashBox) Store() *Store {
	var store *Store

	config.DataBase.First(&store, cb.StoreID)

	return store
}

func (cb *CashBox) Services() []*CashBoxService {
	var services []*CashBoxService

	config.DataBase.Where("cash_box_id = ?", cb.ID).Order("id asc").Find(&services)

	return services
}

func (cb *CashBox) Entries() []*ElectronicEntry {
	var entries []*ElectronicEntry

	config.DataBase.Where("cash_box_id = ?", cb.ID).Order("id asc").Find(&entries)

	return entries
}

func (cb *CashBox) Expenses() []*Expense {
	var expenses []*Expense

	config.DataBase.Where("cash_box_id = ?", cb.ID).Order("id asc").Find(&expenses)

	return expenses
}

// GrossCents sums the gross-counted service lines of this box.
func (cb *CashBox) GrossCents() int64 {
	var total int64

	config.DataBase.
		Model(&CashBoxService{}).
		Joins("JOIN service_types ON service_types.id = cash_box_services.service_type_id").
		Where("cash_box_services.cash_box_id = ? AND service_types.gross_counted = ?", cb.ID, true).
		Select("COALESCE(SUM(cash_box_services.amount_cents), 0)").
		Scan(&total)

	return total
}

func IsDateTakenError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "idx_cash_boxes_store_date")
}

func GetCashBoxByUUID(id uuid.UUID) *CashBox {
	var cash_box *CashBox

	if result := config.DataBase.First(&cash_box, "uuid = ?", id); result.Error != nil {
		return nil
	}

	return cash_box
}

// CreateWithChildren inserts the parent row, then the child rows. There is no
// transaction here on purpose: on a child failure we issue one best-effort
// compensating delete of the parent and surface the original error. A network
// drop mid-delete can still orphan rows.
func (cb *CashBox) CreateWithChildren(services []*CashBoxService, entries []*ElectronicEntry, expenses []*Expense) error {
	if err := config.DataBase.Create(cb).Error; err != nil {
		return err
	}

	insert := func() error {
		for _, service := range services {
			service.CashBoxID = cb.ID
			if err := config.DataBase.Create(service).Error; err != nil {
				return err
			}
		}

		for _, entry := range entries {
			entry.CashBoxID = cb.ID
			if err := config.DataBase.Create(entry).Error; err != nil {
				return err
			}
		}

		for _, expense := range expenses {
			expense.CashBoxID = cb.ID
			if err := config.DataBase.Create(expense).Error; err != nil {
				return err
			}
		}

		return nil
	}

	if err := insert(); err != nil {
		cb.Compensate()

		return err
	}

	return nil
}

// Compensate removes the parent (and whatever children made it in) after a
// failed multi-table write.
func (cb *CashBox) Compensate() {
	cb.compensateChildren()

	if result := config.DataBase.Delete(cb); result.Error != nil {
		config.Logger.Errorf("cashbox %d compensation: parent delete failed: %v", cb.ID, result.Error)
	}
}

// compensateChildren is the child half of Compensate, for failures where the
// parent row must survive.
func (cb *CashBox) compensateChildren() {
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&CashBoxService{}); result.Error != nil {
		config.Logger.Errorf("cashbox %d compensation: services delete failed: %v", cb.ID, result.Error)
	}
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&ElectronicEntry{}); result.Error != nil {
		config.Logger.Errorf("cashbox %d compensation: entries delete failed: %v", cb.ID, result.Error)
	}
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&Expense{}); result.Error != nil {
		config.Logger.Errorf("cashbox %d compensation: expenses delete failed: %v", cb.ID, result.Error)
	}
}

// ReplaceChildren drops the current child rows and inserts the given ones.
// A mid-insert failure triggers the same best-effort compensation as
// CreateWithChildren minus the parent delete: the box survives with no
// children rather than a half-replaced set, and the caller gets the
// original error.
func (cb *CashBox) ReplaceChildren(services []*CashBoxService, entries []*ElectronicEntry, expenses []*Expense) error {
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&CashBoxService{}); result.Error != nil {
		return result.Error
	}
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&ElectronicEntry{}); result.Error != nil {
		return result.Error
	}
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&Expense{}); result.Error != nil {
		return result.Error
	}

	insert := func() error {
		for _, service := range services {
			service.CashBoxID = cb.ID
			if err := config.DataBase.Create(service).Error; err != nil {
				return err
			}
		}

		for _, entry := range entries {
			entry.CashBoxID = cb.ID
			if err := config.DataBase.Create(entry).Error; err != nil {
				return err
			}
		}

		for _, expense := range expenses {
			expense.CashBoxID = cb.ID
			if err := config.DataBase.Create(expense).Error; err != nil {
				return err
			}
		}

		return nil
	}

	if err := insert(); err != nil {
		cb.compensateChildren()

		return err
	}

	return nil
}

// Destroy removes the box and its children, children first.
func (cb *CashBox) Destroy() error {
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&CashBoxService{}); result.Error != nil {
		return result.Error
	}
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&ElectronicEntry{}); result.Error != nil {
		return result.Error
	}
	if result := config.DataBase.Where("cash_box_id = ?", cb.ID).Delete(&Expense{}); result.Error != nil {
		return result.Error
	}

	return config.DataBase.Delete(cb).Error
}

package models

import (
	"time"

	"github.com/varejotech/caixa/config"
	"gorm.io/gorm"
)

type Store struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" validate:"required"`
	Slug      string    `json:"slug" gorm:"uniqueIndex" validate:"required"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) FixedExpenses() []*FixedExpense {
	var fixed_expenses []*FixedExpense

	config.DataBase.Where("store_id = ? AND active = ?", s.ID, true).Order("id asc").Find(&fixed_expenses)

	return fixed_expenses
}

// InUse reports whether register or ledger rows still reference the store.
// Such a store can be deactivated but not deleted.
func (s *Store) InUse(tx *gorm.DB) bool {
	var count int64

	tx.Model(&CashBox{}).Where("store_id = ?", s.ID).Count(&count)
	if count > 0 {
		return true
	}

	tx.Model(&Receivable{}).Where("store_id = ?", s.ID).Count(&count)
	if count > 0 {
		return true
	}

	tx.Model(&FixedExpense{}).Where("store_id = ?", s.ID).Count(&count)

	return count > 0
}

func GetStoreByID(id int64) *Store {
	var store *Store

	if result := config.DataBase.First(&store, id); result.Error != nil {
		return nil
	}

	return store
}

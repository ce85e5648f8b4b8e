package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/types"
)

func TestStoreInUse(t *testing.T) {
	setupTestDatabase(t)

	store := &Store{Name: "Centro", Slug: "centro"}
	assert.NoError(t, config.DataBase.Create(store).Error)
	assert.False(t, store.InUse(config.DataBase))

	cash_box := &CashBox{
		UUID:    uuid.New(),
		StoreID: store.ID,
		Date:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, config.DataBase.Create(cash_box).Error)
	assert.True(t, store.InUse(config.DataBase))
}

func TestServiceTypeInUse(t *testing.T) {
	setupTestDatabase(t)

	service_type := &ServiceType{Name: "Lavagem"}
	assert.NoError(t, config.DataBase.Create(service_type).Error)
	assert.False(t, service_type.InUse(config.DataBase))

	receivable := &Receivable{
		UUID:          uuid.New(),
		StoreID:       1,
		ServiceTypeID: service_type.ID,
		CustomerName:  "Carlos",
		AmountCents:   12000,
		Status:        types.ReceivableOpen,
		DueDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, config.DataBase.Create(receivable).Error)
	assert.True(t, service_type.InUse(config.DataBase))
}

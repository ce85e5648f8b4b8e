package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/varejotech/caixa/config"
)

func TestCreateWithChildren(t *testing.T) {
	setupTestDatabase(t)

	cash_box := &CashBox{
		UUID:    uuid.New(),
		StoreID: 1,
		Date:    time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	}

	err := cash_box.CreateWithChildren(
		[]*CashBoxService{{ServiceTypeID: 1, Quantity: 2, AmountCents: 8000}},
		[]*ElectronicEntry{{Kind: "pix", AmountCents: 4500}},
		[]*Expense{{Description: "gelo", AmountCents: 1200}},
	)
	assert.NoError(t, err)
	assert.NotZero(t, cash_box.ID)

	assert.Len(t, cash_box.Services(), 1)
	assert.Len(t, cash_box.Entries(), 1)
	assert.Len(t, cash_box.Expenses(), 1)
}

func TestCreateWithChildrenCompensation(t *testing.T) {
	setupTestDatabase(t)

	cash_box := &CashBox{
		UUID:    uuid.New(),
		StoreID: 1,
		Date:    time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
	}

	// The second line reuses the first line's primary key, so its insert
	// fails after the parent and one child already landed.
	services := []*CashBoxService{
		{ID: 11, ServiceTypeID: 1, Quantity: 1, AmountCents: 5000},
		{ID: 11, ServiceTypeID: 2, Quantity: 1, AmountCents: 3000},
	}

	err := cash_box.CreateWithChildren(services, nil, nil)
	assert.Error(t, err)

	var boxes, lines int64
	config.DataBase.Model(&CashBox{}).Count(&boxes)
	config.DataBase.Model(&CashBoxService{}).Count(&lines)
	assert.Zero(t, boxes)
	assert.Zero(t, lines)
}

func TestReplaceChildren(t *testing.T) {
	setupTestDatabase(t)

	cash_box := &CashBox{
		UUID:    uuid.New(),
		StoreID: 1,
		Date:    time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
	}

	err := cash_box.CreateWithChildren(
		[]*CashBoxService{{ServiceTypeID: 1, Quantity: 1, AmountCents: 5000}},
		nil, nil,
	)
	assert.NoError(t, err)

	err = cash_box.ReplaceChildren(
		[]*CashBoxService{
			{ServiceTypeID: 1, Quantity: 2, AmountCents: 9000},
			{ServiceTypeID: 2, Quantity: 1, AmountCents: 2500},
		},
		nil, nil,
	)
	assert.NoError(t, err)

	services := cash_box.Services()
	assert.Len(t, services, 2)
	assert.Equal(t, int64(9000), services[0].AmountCents)
}

func TestReplaceChildrenCleansUpOnFailure(t *testing.T) {
	setupTestDatabase(t)

	cash_box := &CashBox{
		UUID:    uuid.New(),
		StoreID: 1,
		Date:    time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
	}

	err := cash_box.CreateWithChildren(
		[]*CashBoxService{{ServiceTypeID: 1, Quantity: 1, AmountCents: 5000}},
		nil, nil,
	)
	assert.NoError(t, err)

	// Duplicate primary key fails the second insert midway through the
	// replacement.
	err = cash_box.ReplaceChildren(
		[]*CashBoxService{
			{ID: 31, ServiceTypeID: 1, Quantity: 1, AmountCents: 7000},
			{ID: 31, ServiceTypeID: 2, Quantity: 1, AmountCents: 1000},
		},
		nil, nil,
	)
	assert.Error(t, err)

	// The box survives, with no half-replaced child set left behind.
	assert.NotNil(t, GetCashBoxByUUID(cash_box.UUID))
	assert.Empty(t, cash_box.Services())
}

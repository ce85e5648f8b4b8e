package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/types"
)

func TestReceivableTransitions(t *testing.T) {
	r := &Receivable{Status: types.ReceivableOpen}

	assert.True(t, r.CanTransitionTo(types.ReceivablePendingWriteOff))
	assert.True(t, r.CanTransitionTo(types.ReceivableSettled))
	assert.False(t, r.CanTransitionTo(types.ReceivableWrittenOff))

	r.Status = types.ReceivablePendingWriteOff
	assert.True(t, r.CanTransitionTo(types.ReceivableWrittenOff))
	assert.True(t, r.CanTransitionTo(types.ReceivableOpen))
	assert.True(t, r.CanTransitionTo(types.ReceivableSettled))

	// Terminal states stay put.
	r.Status = types.ReceivableWrittenOff
	assert.False(t, r.CanTransitionTo(types.ReceivableOpen))
	assert.False(t, r.CanTransitionTo(types.ReceivableSettled))

	r.Status = types.ReceivableSettled
	assert.False(t, r.CanTransitionTo(types.ReceivableOpen))
}

func TestTransitionToGuardsStaleCopies(t *testing.T) {
	setupTestDatabase(t)

	receivable := &Receivable{
		UUID:          uuid.New(),
		StoreID:       1,
		ServiceTypeID: 1,
		CustomerName:  "Marcos",
		AmountCents:   15000,
		Status:        types.ReceivableOpen,
		DueDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, config.DataBase.Create(receivable).Error)

	stale := &Receivable{}
	assert.NoError(t, config.DataBase.First(stale, receivable.ID).Error)

	assert.NoError(t, receivable.TransitionTo(types.ReceivableSettled))
	assert.Equal(t, types.ReceivableSettled, receivable.Status)

	// The copy still believes the receivable is open; its update must not
	// land on the now-settled row.
	err := stale.TransitionTo(types.ReceivablePendingWriteOff)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	fresh := &Receivable{}
	assert.NoError(t, config.DataBase.First(fresh, receivable.ID).Error)
	assert.Equal(t, types.ReceivableSettled, fresh.Status)
	assert.True(t, fresh.SettledAt.Valid)
}

func TestReceivableOverdue(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 0, 0, 0, time.UTC)

	r := &Receivable{
		Status:  types.ReceivableOpen,
		DueDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, r.IsOverdue(now))

	r.DueDate = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	assert.False(t, r.IsOverdue(now))

	// Only open receivables can be overdue.
	r.DueDate = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	r.Status = types.ReceivableSettled
	assert.False(t, r.IsOverdue(now))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/varejotech/caixa/config"
)

func TestFindOrCreateMemberByUID(t *testing.T) {
	setupTestDatabase(t)

	member := FindOrCreateMemberByUID("IDCA000001", "ana@varejo.dev", "field", "active")
	assert.NotZero(t, member.ID)
	assert.Equal(t, "IDCA000001", member.UID)

	// Same uid resolves to the same row, with identity fields refreshed.
	again := FindOrCreateMemberByUID("IDCA000001", "ana.souza@varejo.dev", "field", "active")
	assert.Equal(t, member.ID, again.ID)
	assert.Equal(t, "IDCA000001", again.UID)
	assert.Equal(t, "ana.souza@varejo.dev", again.Email)

	other := FindOrCreateMemberByUID("IDCA000002", "bia@varejo.dev", "admin", "active")
	assert.NotEqual(t, member.ID, other.ID)
	assert.Equal(t, "IDCA000002", other.UID)
	assert.True(t, other.IsAdmin())

	// A first login must never land as a row with an empty uid.
	var blank int64
	config.DataBase.Model(&Member{}).Where("uid = ?", "").Count(&blank)
	assert.Zero(t, blank)
}

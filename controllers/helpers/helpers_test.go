package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	month, ok := ParseMonth("2026-05")
	assert.True(t, ok)
	assert.Equal(t, 2026, month.Year())

	_, ok = ParseMonth("2026-13")
	assert.False(t, ok)

	_, ok = ParseMonth("05/2026")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	date, ok := ParseDate("2026-05-31")
	assert.True(t, ok)
	assert.Equal(t, 31, date.Day())

	_, ok = ParseDate("31/05/2026")
	assert.False(t, ok)
}

func TestValidateOrderBy(t *testing.T) {
	assert.True(t, ValidateOrderBy(""))
	assert.True(t, ValidateOrderBy("asc"))
	assert.True(t, ValidateOrderBy("desc"))
	assert.False(t, ValidateOrderBy("sideways"))
}

package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Lock attaches FOR UPDATE to a query. The pool runs with
// SkipDefaultTransaction, so the lock only holds inside an explicit
// transaction; callers pass their transaction handle.
func Lock(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

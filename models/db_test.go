package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/varejotech/caixa/config"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDatabase points config.DataBase at a fresh in-memory sqlite
// database. gen_random_uuid is postgres-only, so the uuid-bearing tables are
// created by hand instead of through AutoMigrate.
func setupTestDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}

	pool, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	pool.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&Member{},
		&Store{},
		&ServiceType{},
		&FixedExpense{},
		&CashBoxService{},
		&ElectronicEntry{},
		&Expense{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db.Exec(`CREATE TABLE cash_boxes (
		id integer PRIMARY KEY AUTOINCREMENT,
		uuid text,
		store_id integer,
		date date,
		opened_by_id integer,
		note text,
		created_at datetime,
		updated_at datetime)`)
	db.Exec(`CREATE UNIQUE INDEX idx_cash_boxes_store_date ON cash_boxes(store_id, date)`)
	db.Exec(`CREATE TABLE receivables (
		id integer PRIMARY KEY AUTOINCREMENT,
		uuid text,
		store_id integer,
		service_type_id integer,
		customer_name text,
		amount_cents integer,
		status text DEFAULT 'open',
		due_date date,
		settled_at datetime,
		created_at datetime,
		updated_at datetime)`)

	config.DataBase = db
	config.Logger = logrus.New()
}

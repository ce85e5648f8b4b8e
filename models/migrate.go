package models

import "github.com/varejotech/caixa/config"

func Migrate() error {
	return config.DataBase.AutoMigrate(
		&Store{},
		&Member{},
		&ServiceType{},
		&CashBox{},
		&CashBoxService{},
		&ElectronicEntry{},
		&Expense{},
		&FixedExpense{},
		&Receivable{},
	)
}

package helpers

import (
	"database/sql"
	"time"

	"github.com/gookit/validate"
	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/types"
)

type CashBoxServiceParams struct {
	ServiceTypeID int64 `json:"service_type_id" form:"service_type_id" validate:"required"`
	Quantity      int32 `json:"quantity" form:"quantity"`
	AmountCents   int64 `json:"amount_cents" form:"amount_cents" validate:"required"`
}

type ElectronicEntryParams struct {
	Kind        types.EntryKind `json:"kind" form:"kind" validate:"required"`
	AmountCents int64           `json:"amount_cents" form:"amount_cents" validate:"required"`
	Reference   string          `json:"reference" form:"reference"`
}

type ExpenseParams struct {
	Description string `json:"description" form:"description" validate:"required"`
	AmountCents int64  `json:"amount_cents" form:"amount_cents" validate:"required"`
}

type CreateCashBoxParams struct {
	StoreID  int64                   `json:"store_id" form:"store_id" validate:"required"`
	Date     string                  `json:"date" form:"date" validate:"required|VaildateDate"`
	Note     string                  `json:"note" form:"note"`
	Services []CashBoxServiceParams  `json:"services" form:"services"`
	Entries  []ElectronicEntryParams `json:"entries" form:"entries"`
	Expenses []ExpenseParams         `json:"expenses" form:"expenses"`
}

func (p CreateCashBoxParams) Messages() map[string]string {
	invalid_message := "cashbox.create.invalid_{field}"

	return validate.MS{
		"required":     invalid_message,
		"VaildateDate": "cashbox.create.invalid_date",
	}
}

func (p CreateCashBoxParams) VaildateDate(date string) bool {
	_, ok := ParseDate(date)

	return ok
}

func (p CreateCashBoxParams) buildChildren(err_src *Errors) ([]*models.CashBoxService, []*models.ElectronicEntry, []*models.Expense) {
	services := make([]*models.CashBoxService, 0, len(p.Services))
	for _, sp := range p.Services {
		quantity := sp.Quantity
		if quantity == 0 {
			quantity = 1
		}

		service := &models.CashBoxService{
			ServiceTypeID: sp.ServiceTypeID,
			Quantity:      quantity,
			AmountCents:   sp.AmountCents,
		}
		Vaildate(service, err_src)
		services = append(services, service)
	}

	entries := make([]*models.ElectronicEntry, 0, len(p.Entries))
	for _, ep := range p.Entries {
		entry := &models.ElectronicEntry{
			Kind:        ep.Kind,
			AmountCents: ep.AmountCents,
			Reference:   sql.NullString{String: ep.Reference, Valid: len(ep.Reference) > 0},
		}
		Vaildate(entry, err_src)
		entries = append(entries, entry)
	}

	expenses := make([]*models.Expense, 0, len(p.Expenses))
	for _, xp := range p.Expenses {
		expense := &models.Expense{
			Description: xp.Description,
			AmountCents: xp.AmountCents,
		}
		Vaildate(expense, err_src)
		expenses = append(expenses, expense)
	}

	return services, entries, expenses
}

// CreateCashBox validates the payload, writes the parent and children, and on
// a child failure relies on the model's compensating delete.
func (p CreateCashBoxParams) CreateCashBox(member *models.Member, err_src *Errors) *models.CashBox {
	date, _ := ParseDate(p.Date)

	cash_box := &models.CashBox{
		StoreID:    p.StoreID,
		Date:       date,
		OpenedByID: member.ID,
		Note:       p.Note,
	}
	Vaildate(cash_box, err_src)

	services, entries, expenses := p.buildChildren(err_src)

	if err_src.Size() > 0 {
		return nil
	}

	if err := cash_box.CreateWithChildren(services, entries, expenses); err != nil {
		if models.IsDateTakenError(err) {
			err_src.Errors = append(err_src.Errors, "cashbox.create.date_taken")
		} else {
			err_src.Errors = append(err_src.Errors, "cashbox.create.failed")
		}

		return nil
	}

	return cash_box
}

// UpdateCashBox replaces the children and the note of an existing box.
func (p CreateCashBoxParams) UpdateCashBox(cash_box *models.CashBox, err_src *Errors) *models.CashBox {
	services, entries, expenses := p.buildChildren(err_src)

	if err_src.Size() > 0 {
		return nil
	}

	if err := cash_box.ReplaceChildren(services, entries, expenses); err != nil {
		err_src.Errors = append(err_src.Errors, "cashbox.update.failed")

		return nil
	}

	cash_box.Note = p.Note
	cash_box.UpdatedAt = time.Now()
	if err := config.DataBase.Model(cash_box).Updates(map[string]interface{}{"note": p.Note}).Error; err != nil {
		err_src.Errors = append(err_src.Errors, "cashbox.update.failed")

		return nil
	}

	return cash_box
}

package admin_controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/models"
)

type FixedExpenseParams struct {
	StoreID     int64  `json:"store_id" form:"store_id" validate:"required"`
	Name        string `json:"name" form:"name" validate:"required"`
	AmountCents int64  `json:"amount_cents" form:"amount_cents" validate:"required"`
	Active      *bool  `json:"active" form:"active"`
}

func (p FixedExpenseParams) Messages() map[string]string {
	return map[string]string{
		"required": "admin.fixed_expense.invalid_{field}",
	}
}

func GetFixedExpenses(c *fiber.Ctx) error {
	tx := config.DataBase.Order("store_id asc, id asc")

	if store_id, err := strconv.ParseInt(c.Query("store_id"), 10, 64); err == nil && store_id > 0 {
		tx = tx.Where("store_id = ?", store_id)
	}

	var fixed_expenses []*models.FixedExpense
	tx.Find(&fixed_expenses)

	return c.Status(200).JSON(fixed_expenses)
}

func CreateFixedExpense(c *fiber.Ctx) error {
	errors_src := new(helpers.Errors)
	payload := new(FixedExpenseParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, errors_src)
	if errors_src.Size() > 0 {
		return c.Status(422).JSON(errors_src)
	}

	if models.GetStoreByID(payload.StoreID) == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	fixed_expense := &models.FixedExpense{
		StoreID:     payload.StoreID,
		Name:        payload.Name,
		AmountCents: payload.AmountCents,
		Active:      true,
	}

	if payload.Active != nil {
		fixed_expense.Active = *payload.Active
	}

	helpers.Vaildate(fixed_expense, errors_src)
	if errors_src.Size() > 0 {
		return c.Status(422).JSON(errors_src)
	}

	if err := config.DataBase.Create(fixed_expense).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(fixed_expense)
}

func UpdateFixedExpense(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.fixed_expense.invalid_id"},
		})
	}

	fixed_expense := models.GetFixedExpenseByID(int64(id))
	if fixed_expense == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	payload := new(FixedExpenseParams)
	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	updates := map[string]interface{}{}
	if len(payload.Name) > 0 {
		updates["name"] = payload.Name
	}
	if payload.AmountCents > 0 {
		updates["amount_cents"] = payload.AmountCents
	}
	if payload.Active != nil {
		updates["active"] = *payload.Active
	}

	if err := config.DataBase.Model(fixed_expense).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(models.GetFixedExpenseByID(fixed_expense.ID))
}

func DeleteFixedExpense(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.fixed_expense.invalid_id"},
		})
	}

	fixed_expense := models.GetFixedExpenseByID(int64(id))
	if fixed_expense == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if result := config.DataBase.Delete(fixed_expense); result.Error != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fixed_expense)
}

package cashbox_controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/controllers/auth"
	"github.com/varejotech/caixa/controllers/entities"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/controllers/queries"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/services/summary_service"
	"github.com/varejotech/caixa/types"
)

func CashBoxToEntity(cash_box *models.CashBox) *entities.CashBoxEntity {
	services := make([]entities.CashBoxServiceEntity, 0)
	for _, service := range cash_box.Services() {
		service_type := service.ServiceType()

		services = append(services, entities.CashBoxServiceEntity{
			ServiceTypeID: service.ServiceTypeID,
			ServiceName:   service_type.Name,
			Quantity:      service.Quantity,
			AmountCents:   service.AmountCents,
		})
	}

	entries := make([]entities.ElectronicEntryEntity, 0)
	for _, entry := range cash_box.Entries() {
		entries = append(entries, entities.ElectronicEntryEntity{
			Kind:        entry.Kind,
			AmountCents: entry.AmountCents,
			Reference:   entry.Reference.String,
		})
	}

	var expense_cents int64
	expenses := make([]entities.ExpenseEntity, 0)
	for _, expense := range cash_box.Expenses() {
		expense_cents += expense.AmountCents
		expenses = append(expenses, entities.ExpenseEntity{
			Description: expense.Description,
			AmountCents: expense.AmountCents,
		})
	}

	return &entities.CashBoxEntity{
		UUID:         cash_box.UUID,
		StoreID:      cash_box.StoreID,
		Date:         cash_box.Date.Format("2006-01-02"),
		Note:         cash_box.Note,
		GrossCents:   cash_box.GrossCents(),
		ExpenseCents: expense_cents,
		Services:     services,
		Entries:      entries,
		Expenses:     expenses,
		CreatedAt:    cash_box.CreatedAt,
		UpdatedAt:    cash_box.UpdatedAt,
	}
}

func CreateCashBox(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errors := new(helpers.Errors)
	payload := new(helpers.CreateCashBoxParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	if !CurrentUser.CanAccessStore(payload.StoreID) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	cash_box := payload.CreateCashBox(CurrentUser, errors)

	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	summary_service.Invalidate(cash_box.StoreID)

	return c.Status(201).JSON(CashBoxToEntity(cash_box))
}

func GetCashBoxes(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.CashBoxFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	errors := new(helpers.Errors)
	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	if len(params.OrderBy) == 0 {
		params.OrderBy = types.OrderByDesc
	}

	tx := config.DataBase.Order("date " + params.OrderBy)

	if CurrentUser.IsAdmin() {
		if params.StoreID > 0 {
			tx = tx.Where("store_id = ?", params.StoreID)
		}
	} else {
		if params.StoreID > 0 && !CurrentUser.CanAccessStore(params.StoreID) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"authz.invalid_permission"},
			})
		}

		tx = tx.Where("store_id = ?", CurrentUser.StoreID.Int64)
	}

	if len(params.DateFrom) > 0 {
		date_from, _ := helpers.ParseDate(params.DateFrom)
		tx = tx.Where("date >= ?", date_from)
	}

	if len(params.DateTo) > 0 {
		date_to, _ := helpers.ParseDate(params.DateTo)
		tx = tx.Where("date <= ?", date_to)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	tx = tx.Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit)

	var cash_boxes []*models.CashBox
	tx.Find(&cash_boxes)

	cash_boxes_json := make([]*entities.CashBoxEntity, 0)
	for _, cash_box := range cash_boxes {
		cash_boxes_json = append(cash_boxes_json, CashBoxToEntity(cash_box))
	}

	return c.Status(200).JSON(cash_boxes_json)
}

func findCashBox(c *fiber.Ctx, CurrentUser *models.Member) (*models.CashBox, error) {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return nil, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"cashbox.invalid_uuid"},
		})
	}

	cash_box := models.GetCashBoxByUUID(id)
	if cash_box == nil {
		return nil, c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if !CurrentUser.CanAccessStore(cash_box.StoreID) {
		return nil, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return cash_box, nil
}

func GetCashBoxByUUID(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	cash_box, err := findCashBox(c, CurrentUser)
	if cash_box == nil {
		return err
	}

	return c.Status(200).JSON(CashBoxToEntity(cash_box))
}

func UpdateCashBox(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	cash_box, err := findCashBox(c, CurrentUser)
	if cash_box == nil {
		return err
	}

	errors := new(helpers.Errors)
	payload := new(helpers.CreateCashBoxParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	// Date and store are fixed once a box exists; only children and note move.
	payload.StoreID = cash_box.StoreID
	payload.Date = cash_box.Date.Format("2006-01-02")

	payload.UpdateCashBox(cash_box, errors)

	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	summary_service.Invalidate(cash_box.StoreID)

	return c.Status(200).JSON(CashBoxToEntity(cash_box))
}

func DeleteCashBox(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	cash_box, err := findCashBox(c, CurrentUser)
	if cash_box == nil {
		return err
	}

	if err := cash_box.Destroy(); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	summary_service.Invalidate(cash_box.StoreID)

	return c.Status(200).JSON(fiber.Map{"deleted_at": time.Now()})
}

package receivable_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/controllers/auth"
	"github.com/varejotech/caixa/controllers/entities"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/controllers/queries"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/types"
)

func ReceivableToEntity(receivable *models.Receivable) *entities.ReceivableEntity {
	entity := &entities.ReceivableEntity{
		UUID:          receivable.UUID,
		StoreID:       receivable.StoreID,
		ServiceTypeID: receivable.ServiceTypeID,
		CustomerName:  receivable.CustomerName,
		AmountCents:   receivable.AmountCents,
		Status:        receivable.Status,
		DueDate:       receivable.DueDate.Format("2006-01-02"),
		CreatedAt:     receivable.CreatedAt,
		UpdatedAt:     receivable.UpdatedAt,
	}

	if receivable.SettledAt.Valid {
		settled_at := receivable.SettledAt.Time
		entity.SettledAt = &settled_at
	}

	return entity
}

func CreateReceivable(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errors_src := new(helpers.Errors)
	payload := new(helpers.CreateReceivableParams)

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

	helpers.Vaildate(payload, errors_src)
	if errors_src.Size() > 0 {
		return c.Status(422).JSON(errors_src)
	}

	receivable := payload.CreateReceivable(errors_src)

	if errors_src.Size() > 0 {
		return c.Status(422).JSON(errors_src)
	}

	return c.Status(201).JSON(ReceivableToEntity(receivable))
}

func GetReceivables(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.ReceivableFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	errors_src := new(helpers.Errors)
	helpers.Vaildate(params, errors_src)
	if errors_src.Size() > 0 {
		return c.Status(422).JSON(errors_src)
	}

	if len(params.OrderBy) == 0 {
		params.OrderBy = types.OrderByDesc
	}

	tx := config.DataBase.Order("due_date " + params.OrderBy)

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

	if len(params.Status) > 0 {
		tx = tx.Where("status = ?", params.Status)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	tx = tx.Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit)

	var receivables []*models.Receivable
	tx.Find(&receivables)

	receivables_json := make([]*entities.ReceivableEntity, 0)
	for _, receivable := range receivables {
		receivables_json = append(receivables_json, ReceivableToEntity(receivable))
	}

	return c.Status(200).JSON(receivables_json)
}

func findReceivable(c *fiber.Ctx, CurrentUser *models.Member) (*models.Receivable, error) {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return nil, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"receivable.invalid_uuid"},
		})
	}

	receivable := models.GetReceivableByUUID(id)
	if receivable == nil {
		return nil, c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if !CurrentUser.CanAccessStore(receivable.StoreID) {
		return nil, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return receivable, nil
}

func UpdateReceivableStatus(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	receivable, err := findReceivable(c, CurrentUser)
	if receivable == nil {
		return err
	}

	errors_src := new(helpers.Errors)
	payload := new(queries.UpdateReceivableStatusParams)

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

	if err := receivable.TransitionTo(payload.Status); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"receivable.invalid_transition"},
			})
		}

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	receivable = models.GetReceivableByUUID(receivable.UUID)

	return c.Status(200).JSON(ReceivableToEntity(receivable))
}

func DeleteReceivable(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	receivable, err := findReceivable(c, CurrentUser)
	if receivable == nil {
		return err
	}

	if result := config.DataBase.Delete(receivable); result.Error != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(ReceivableToEntity(receivable))
}

package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/models"
)

var errStoreInUse = errors.New("admin.store.in_use")

type StoreParams struct {
	Name   string `json:"name" form:"name" validate:"required"`
	Slug   string `json:"slug" form:"slug" validate:"required"`
	Active *bool  `json:"active" form:"active"`
}

func (p StoreParams) Messages() map[string]string {
	return map[string]string{
		"required": "admin.store.invalid_{field}",
	}
}

func GetStores(c *fiber.Ctx) error {
	var stores []*models.Store

	config.DataBase.Order("id asc").Find(&stores)

	return c.Status(200).JSON(stores)
}

func CreateStore(c *fiber.Ctx) error {
	errors_src := new(helpers.Errors)
	payload := new(StoreParams)

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

	store := &models.Store{
		Name:   payload.Name,
		Slug:   payload.Slug,
		Active: true,
	}

	if payload.Active != nil {
		store.Active = *payload.Active
	}

	if err := config.DataBase.Create(store).Error; err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.store.slug_taken"},
		})
	}

	return c.Status(201).JSON(store)
}

func UpdateStore(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.store.invalid_id"},
		})
	}

	store := models.GetStoreByID(int64(id))
	if store == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	payload := new(StoreParams)
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
	if len(payload.Slug) > 0 {
		updates["slug"] = payload.Slug
	}
	if payload.Active != nil {
		updates["active"] = *payload.Active
	}

	if err := config.DataBase.Model(store).Updates(updates).Error; err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.store.slug_taken"},
		})
	}

	return c.Status(200).JSON(models.GetStoreByID(store.ID))
}

// DeleteStore removes a store that no cash box, receivable or fixed expense
// references. The row is locked while the reference check runs, so a box
// created mid-delete cannot be orphaned.
func DeleteStore(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.store.invalid_id"},
		})
	}

	store := models.GetStoreByID(int64(id))
	if store == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	err = config.DataBase.Transaction(func(tx *gorm.DB) error {
		if result := models.Lock(tx).First(store, store.ID); result.Error != nil {
			return result.Error
		}

		if store.InUse(tx) {
			return errStoreInUse
		}

		return tx.Delete(store).Error
	})

	if errors.Is(err, errStoreInUse) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.store.in_use"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(store)
}

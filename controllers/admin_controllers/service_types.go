package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/models"
)

var errServiceTypeInUse = errors.New("admin.service_type.in_use")

type ServiceTypeParams struct {
	Name         string `json:"name" form:"name" validate:"required"`
	GrossCounted *bool  `json:"gross_counted" form:"gross_counted"`
	Active       *bool  `json:"active" form:"active"`
	Position     int32  `json:"position" form:"position"`
}

func (p ServiceTypeParams) Messages() map[string]string {
	return map[string]string{
		"required": "admin.service_type.invalid_{field}",
	}
}

func GetServiceTypes(c *fiber.Ctx) error {
	var service_types []*models.ServiceType

	config.DataBase.Order("position asc, id asc").Find(&service_types)

	return c.Status(200).JSON(service_types)
}

func CreateServiceType(c *fiber.Ctx) error {
	errors_src := new(helpers.Errors)
	payload := new(ServiceTypeParams)

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

	service_type := &models.ServiceType{
		Name:         payload.Name,
		GrossCounted: true,
		Active:       true,
		Position:     payload.Position,
	}

	if payload.GrossCounted != nil {
		service_type.GrossCounted = *payload.GrossCounted
	}
	if payload.Active != nil {
		service_type.Active = *payload.Active
	}

	if err := config.DataBase.Create(service_type).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(service_type)
}

func UpdateServiceType(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.service_type.invalid_id"},
		})
	}

	service_type := models.GetServiceTypeByID(int64(id))
	if service_type == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	payload := new(ServiceTypeParams)
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
	if payload.GrossCounted != nil {
		updates["gross_counted"] = *payload.GrossCounted
	}
	if payload.Active != nil {
		updates["active"] = *payload.Active
	}
	if payload.Position > 0 {
		updates["position"] = payload.Position
	}

	if err := config.DataBase.Model(service_type).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(models.GetServiceTypeByID(service_type.ID))
}

// DeleteServiceType removes a catalog entry no cash-box line or receivable
// references; referenced types are deactivated through update instead.
func DeleteServiceType(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.service_type.invalid_id"},
		})
	}

	service_type := models.GetServiceTypeByID(int64(id))
	if service_type == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	err = config.DataBase.Transaction(func(tx *gorm.DB) error {
		if result := models.Lock(tx).First(service_type, service_type.ID); result.Error != nil {
			return result.Error
		}

		if service_type.InUse(tx) {
			return errServiceTypeInUse
		}

		return tx.Delete(service_type).Error
	})

	if errors.Is(err, errServiceTypeInUse) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.service_type.in_use"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(service_type)
}

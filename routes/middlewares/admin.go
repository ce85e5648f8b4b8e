package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/models"
)

func AdminVaildator(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	if !CurrentUser.IsAdmin() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return c.Next()
}

package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/varejotech/caixa/models"
)

// GetCurrentUser returns the member resolved by the Authenticate middleware,
// or nil when the request never went through it.
func GetCurrentUser(c *fiber.Ctx) *models.Member {
	member, ok := c.Locals("CurrentUser").(*models.Member)
	if !ok {
		return nil
	}

	return member
}

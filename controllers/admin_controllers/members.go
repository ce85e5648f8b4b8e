package admin_controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
)

func GetMembers(c *fiber.Ctx) error {
	tx := config.DataBase.Order("id asc")

	if role := c.Query("role"); len(role) > 0 {
		tx = tx.Where("role = ?", role)
	}

	if store_id, err := strconv.ParseInt(c.Query("store_id"), 10, 64); err == nil && store_id > 0 {
		tx = tx.Where("store_id = ?", store_id)
	}

	var members []*models.Member
	tx.Find(&members)

	return c.Status(200).JSON(members)
}

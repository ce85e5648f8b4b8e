package report_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/varejotech/caixa/controllers/auth"
	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/controllers/queries"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/reporting"
	"github.com/varejotech/caixa/services/summary_service"
)

// resolveStore maps the filter onto a store the member may read.
func resolveStore(c *fiber.Ctx, CurrentUser *models.Member, store_id int64) (int64, error) {
	if CurrentUser.IsAdmin() {
		if store_id == 0 {
			return 0, c.Status(422).JSON(helpers.Errors{
				Errors: []string{"report.invalid_store"},
			})
		}

		return store_id, nil
	}

	if store_id > 0 && !CurrentUser.CanAccessStore(store_id) {
		return 0, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	if !CurrentUser.StoreID.Valid {
		return 0, c.Status(422).JSON(helpers.Errors{
			Errors: []string{"report.invalid_store"},
		})
	}

	return CurrentUser.StoreID.Int64, nil
}

func parseFilters(c *fiber.Ctx) (*queries.ReportFilters, error) {
	params := new(queries.ReportFilters)
	if err := c.QueryParser(params); err != nil {
		return nil, c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	errors_src := new(helpers.Errors)
	helpers.Vaildate(params, errors_src)
	if errors_src.Size() > 0 {
		return nil, c.Status(422).JSON(errors_src)
	}

	return params, nil
}

func GetSummary(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params, err := parseFilters(c)
	if params == nil {
		return err
	}

	store_id, err := resolveStore(c, CurrentUser, params.StoreID)
	if store_id == 0 {
		return err
	}

	return c.Status(200).JSON(summary_service.Fetch(store_id))
}

func GetPareto(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params, err := parseFilters(c)
	if params == nil {
		return err
	}

	if len(params.Month) == 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"report.invalid_month"},
		})
	}

	store_id, err := resolveStore(c, CurrentUser, params.StoreID)
	if store_id == 0 {
		return err
	}

	lines := summary_service.MonthServiceLines(store_id, params.Month)

	return c.Status(200).JSON(reporting.Pareto(lines))
}

func GetWaterfall(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params, err := parseFilters(c)
	if params == nil {
		return err
	}

	if len(params.Month) == 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"report.invalid_month"},
		})
	}

	store_id, err := resolveStore(c, CurrentUser, params.StoreID)
	if store_id == 0 {
		return err
	}

	summary := summary_service.MonthSummary(store_id, params.Month)
	if summary == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	return c.Status(200).JSON(reporting.Waterfall(*summary))
}

func GetMarginTrend(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params, err := parseFilters(c)
	if params == nil {
		return err
	}

	store_id, err := resolveStore(c, CurrentUser, params.StoreID)
	if store_id == 0 {
		return err
	}

	summaries := summary_service.Fetch(store_id)

	return c.Status(200).JSON(reporting.MarginTrend(summaries))
}

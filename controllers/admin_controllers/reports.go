package admin_controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"

	"github.com/varejotech/caixa/controllers/helpers"
	"github.com/varejotech/caixa/controllers/queries"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/reporting"
	"github.com/varejotech/caixa/services/summary_service"
)

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// GetMonthlyReportPDF renders one store-month as a printable breakdown.
func GetMonthlyReportPDF(c *fiber.Ctx) error {
	params := new(queries.ReportFilters)
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

	if len(params.Month) == 0 || params.StoreID == 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"report.invalid_month"},
		})
	}

	store := models.GetStoreByID(params.StoreID)
	if store == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	summary := summary_service.MonthSummary(params.StoreID, params.Month)
	if summary == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - %s", store.Name, summary.Month))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	for _, step := range reporting.Waterfall(*summary) {
		pdf.CellFormat(70, 8, step.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, formatCents(step.DeltaCents), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, formatCents(step.RunningCents), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Services")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	for _, entry := range reporting.Pareto(summary_service.MonthServiceLines(params.StoreID, params.Month)) {
		pdf.CellFormat(70, 8, entry.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, formatCents(entry.AmountCents), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, entry.Share.String()+"%", "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_%s.pdf", store.Slug, summary.Month))

	return c.Status(200).Send(buf.Bytes())
}

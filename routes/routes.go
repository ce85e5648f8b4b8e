package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/varejotech/caixa/controllers"
	"github.com/varejotech/caixa/controllers/admin_controllers"
	"github.com/varejotech/caixa/controllers/cashbox_controllers"
	"github.com/varejotech/caixa/controllers/receivable_controllers"
	"github.com/varejotech/caixa/controllers/report_controllers"
	"github.com/varejotech/caixa/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	api := app.Group("/api/v2", middlewares.Authenticate)

	api.Post("/cashboxes", cashbox_controllers.CreateCashBox)
	api.Get("/cashboxes", cashbox_controllers.GetCashBoxes)
	api.Get("/cashboxes/:uuid", cashbox_controllers.GetCashBoxByUUID)
	api.Put("/cashboxes/:uuid", cashbox_controllers.UpdateCashBox)
	api.Delete("/cashboxes/:uuid", cashbox_controllers.DeleteCashBox)

	api.Post("/receivables", receivable_controllers.CreateReceivable)
	api.Get("/receivables", receivable_controllers.GetReceivables)
	api.Put("/receivables/:uuid/status", receivable_controllers.UpdateReceivableStatus)
	api.Delete("/receivables/:uuid", receivable_controllers.DeleteReceivable)

	api.Get("/reports/summary", report_controllers.GetSummary)
	api.Get("/reports/pareto", report_controllers.GetPareto)
	api.Get("/reports/waterfall", report_controllers.GetWaterfall)
	api.Get("/reports/margin-trend", report_controllers.GetMarginTrend)

	admin := api.Group("/admin", middlewares.AdminVaildator)

	admin.Get("/stores", admin_controllers.GetStores)
	admin.Post("/stores", admin_controllers.CreateStore)
	admin.Put("/stores/:id", admin_controllers.UpdateStore)
	admin.Delete("/stores/:id", admin_controllers.DeleteStore)

	admin.Get("/service-types", admin_controllers.GetServiceTypes)
	admin.Post("/service-types", admin_controllers.CreateServiceType)
	admin.Put("/service-types/:id", admin_controllers.UpdateServiceType)
	admin.Delete("/service-types/:id", admin_controllers.DeleteServiceType)

	admin.Get("/fixed-expenses", admin_controllers.GetFixedExpenses)
	admin.Post("/fixed-expenses", admin_controllers.CreateFixedExpense)
	admin.Put("/fixed-expenses/:id", admin_controllers.UpdateFixedExpense)
	admin.Delete("/fixed-expenses/:id", admin_controllers.DeleteFixedExpense)

	admin.Get("/members", admin_controllers.GetMembers)
	admin.Get("/reports/monthly.pdf", admin_controllers.GetMonthlyReportPDF)

	return app
}

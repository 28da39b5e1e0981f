package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func ReportRoutes(r fiber.Router, d *Deps) {
	reports := r.Group("/reports")

	// Reads are open to every authenticated role; the dashboard is the
	// cashier's landing view.
	reports.Get("/dashboard", d.ReportCtl.Dashboard)
	reports.Get("/sales", d.ReportCtl.Sales)
	reports.Get("/best-sellers", d.ReportCtl.BestSellers)
	reports.Get("/inventory", d.ReportCtl.Inventory)

	reports.Get("/export/excel", middleware.RoleGuard(models.RoleAdmin), d.ReportCtl.ExportExcel)
}

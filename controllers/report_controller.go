package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/Galang0304/kasir-pos-capstone/models"
)

// ReportStore is the read-only aggregation surface the report handlers
// depend on. The Mongo store satisfies it.
type ReportStore interface {
	Dashboard(ctx context.Context) (*models.DashboardReport, error)
	SalesSeries(ctx context.Context, groupBy string) ([]models.SalesPoint, error)
	BestSellers(ctx context.Context, limit int) ([]models.BestSeller, error)
	InventoryReport(ctx context.Context) ([]models.InventoryRow, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// ReportController serves read-only aggregations over the transaction
// ledger. Reports are computed at request time from committed data only.
type ReportController struct {
	store ReportStore
}

func NewReportController(store ReportStore) *ReportController {
	return &ReportController{store: store}
}

// GET /reports/dashboard
func (rc *ReportController) Dashboard(c *fiber.Ctx) error {
	report, err := rc.store.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// GET /reports/sales?groupBy=day|month|year
func (rc *ReportController) Sales(c *fiber.Ctx) error {
	series, err := rc.store.SalesSeries(c.Context(), c.Query("groupBy", "day"))
	if err != nil {
		return respondError(c, err)
	}
	if series == nil {
		series = []models.SalesPoint{}
	}
	return c.JSON(series)
}

// GET /reports/best-sellers?limit=5
func (rc *ReportController) BestSellers(c *fiber.Ctx) error {
	list, err := rc.store.BestSellers(c.Context(), c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}
	if list == nil {
		list = []models.BestSeller{}
	}
	return c.JSON(list)
}

// GET /reports/inventory
func (rc *ReportController) Inventory(c *fiber.Ctx) error {
	rows, err := rc.store.InventoryReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// ExportExcel streams the sales ledger as an .xlsx workbook with a detail
// sheet (one row per sold item) and a summary sheet (one row per
// transaction). Optional start/end query params bound the export.
//
// GET /reports/export/excel
func (rc *ReportController) ExportExcel(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}

	txs, err := rc.store.ListTransactions(c.Context(), models.TransactionFilter{Start: start, End: end})
	if err != nil {
		return respondError(c, err)
	}

	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	writeHeaders := func(sheet string, headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	sheetDetail := "Item Detail"
	f.SetSheetName("Sheet1", sheetDetail)
	writeHeaders(sheetDetail, []string{
		"Invoice",
		"Date",
		"Cashier",
		"Customer",
		"Product",
		"SKU",
		"Quantity",
		"Unit Price",
		"Subtotal",
	})

	sheetSummary := "Transactions"
	f.NewSheet(sheetSummary)
	writeHeaders(sheetSummary, []string{
		"Invoice",
		"Date",
		"Cashier",
		"Customer",
		"Subtotal",
		"Discount",
		"Total",
		"Paid",
		"Change",
		"Payment Method",
		"Points Earned",
	})

	rowD := 2
	totalRevenue := 0.0
	for _, tx := range txs {
		for _, it := range tx.Items {
			values := []interface{}{
				tx.InvoiceNumber,
				tx.CreatedAt.Format("02-01-2006 15:04"),
				tx.CashierName,
				tx.CustomerName,
				it.Name,
				it.SKU,
				it.Quantity,
				it.UnitPrice,
				it.Subtotal,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowD)
				f.SetCellValue(sheetDetail, cell, v)
			}
			rowD++
		}
		totalRevenue += tx.Total
	}

	rowS := 2
	for _, tx := range txs {
		values := []interface{}{
			tx.InvoiceNumber,
			tx.CreatedAt.Format("02-01-2006"),
			tx.CashierName,
			tx.CustomerName,
			tx.Subtotal,
			tx.Discount,
			tx.Total,
			tx.AmountPaid,
			tx.Change,
			tx.PaymentMethod,
			tx.PointsEarned,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowS)
			f.SetCellValue(sheetSummary, cell, v)
		}
		rowS++
	}

	f.SetCellValue(sheetSummary, fmt.Sprintf("F%d", rowS+1), "TOTAL REVENUE")
	f.SetCellValue(sheetSummary, fmt.Sprintf("G%d", rowS+1), totalRevenue)

	f.AutoFilter(sheetDetail, "A1:I1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheetDetail, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})
	f.AutoFilter(sheetSummary, "A1:K1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheetSummary, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})

	f.SetActiveSheet(0)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.xlsx", time.Now().Format("20060102")))
	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(c, err)
	}
	return c.Send(buf.Bytes())
}

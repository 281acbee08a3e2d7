package report

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/response"
)

type salesReportRow struct {
	BranchID         uint    `json:"branch_id"`
	BranchName       string  `json:"branch_name"`
	TransactionCount int64   `json:"transaction_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalTax         float64 `json:"total_tax"`
	TotalDiscount    float64 `json:"total_discount"`
}

type salesReport struct {
	From time.Time        `json:"from"`
	To   time.Time        `json:"to"`
	Rows []salesReportRow `json:"rows"`
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	const layout = "2006-01-02"

	// Defaults: the current month to date.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(layout, raw)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(layout, raw)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		// inclusive end of day
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return from, to, fiber.NewError(fiber.StatusBadRequest, "to cannot be before from")
	}
	return from, to, nil
}

func buildSalesReport(c *fiber.Ctx) (*salesReport, error) {
	from, to, err := parseRange(c)
	if err != nil {
		return nil, err
	}

	rows := []salesReportRow{}
	q := database.DB.Model(&models.Sale{}).
		Select(`sales.branch_id,
			branches.name AS branch_name,
			COUNT(sales.id) AS transaction_count,
			COALESCE(SUM(sales.total_payment), 0) AS total_revenue,
			COALESCE(SUM(sales.tax), 0) AS total_tax,
			COALESCE(SUM(sales.discount), 0) AS total_discount`).
		Joins("JOIN branches ON branches.id = sales.branch_id").
		Where("sales.status = ?", models.SaleFinished).
		Where("sales.created_at BETWEEN ? AND ?", from, to).
		Group("sales.branch_id, branches.name").
		Order("total_revenue DESC")

	if branch := c.QueryInt("branch_id"); branch > 0 {
		q = q.Where("sales.branch_id = ?", branch)
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "sales report could not be built")
	}
	return &salesReport{From: from, To: to, Rows: rows}, nil
}

// GET /api/reports/sales?from=2026-01-01&to=2026-01-31&branch_id=1
func SalesReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := buildSalesReport(c)
		if err != nil {
			return err
		}
		return response.OK(c, "sales report", rep)
	}
}

// GET /api/reports/sales/export — the same rows as an XLSX download.
func ExportSalesReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := buildSalesReport(c)
		if err != nil {
			return err
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := "Sales Report"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Branch ID", "Branch", "Transactions", "Revenue", "Tax", "Discount"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for r, row := range rep.Rows {
			values := []any{row.BranchID, row.BranchName, row.TransactionCount, row.TotalRevenue, row.TotalTax, row.TotalDiscount}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "report file could not be generated")
		}

		filename := fmt.Sprintf("sales-report-%s-%s.xlsx",
			rep.From.Format("20060102"), rep.To.Format("20060102"))
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		return c.Send(buf.Bytes())
	}
}

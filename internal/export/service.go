package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"billtracker/internal/repository"
)

// Service is a tiny façade over the bill repository that produces XLSX
// bytes for exports.
type Service struct {
	bills  repository.BillRepository
	logger *slog.Logger
}

func NewService(bills repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bills: bills, logger: logger}
}

// ExportBillsXLSX returns a workbook with one row per stored bill, in
// the same date-descending order as GET /bills.
func (s *Service) ExportBillsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	bills, err := s.bills.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Date", "Vendor", "Category", "Amount", "Image Path", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, b.Date)
		write(2, b.Vendor)
		write(3, b.Category)
		write(4, b.Amount)
		write(5, b.ImagePath)
		write(6, b.CreatedAt.UTC().Format(time.RFC3339))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("bills exported", "count", len(bills), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"pay-assist/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const invoiceSheet = "Invoices"

var invoiceExportHeaders = []string{
	"Invoice ID", "Customer", "Email", "Amount", "Currency", "Due Date", "Status", "Memo", "Sent To", "Created At",
}

// InvoiceLister is the part of InvoiceService the export needs.
type InvoiceLister interface {
	All(ctx context.Context) ([]dto.InvoiceResponse, error)
}

type ExportService struct {
	invoices InvoiceLister
	logger   *zap.Logger
}

func NewExportService(invoices InvoiceLister, logger *zap.Logger) *ExportService {
	return &ExportService{
		invoices: invoices,
		logger:   logger,
	}
}

// InvoicesXLSX renders every invoice into a single-sheet workbook.
func (s *ExportService) InvoicesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	invoices, err := s.invoices.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if index, _ := f.GetSheetIndex(invoiceSheet); index == -1 {
		if _, err := f.NewSheet(invoiceSheet); err != nil {
			return nil, err
		}
	}
	_ = f.DeleteSheet("Sheet1")
	activeIndex, _ := f.GetSheetIndex(invoiceSheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range invoiceExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(invoiceSheet, cell, h)
	}

	for i, inv := range invoices {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(invoiceSheet, cell, v)
		}

		write(1, inv.ID)
		write(2, inv.CustomerName)
		write(3, inv.CustomerEmail)
		if amount, err := decimal.NewFromString(inv.Amount); err == nil {
			write(4, amount.InexactFloat64())
		} else {
			write(4, inv.Amount)
		}
		write(5, inv.Currency)
		write(6, inv.DueDate)
		write(7, inv.Status)
		write(8, inv.Memo)
		write(9, inv.SentTo)
		write(10, inv.CreatedAt)
	}

	_ = f.SetColWidth(invoiceSheet, "A", "A", 38)
	_ = f.SetColWidth(invoiceSheet, "B", "C", 24)
	_ = f.SetColWidth(invoiceSheet, "H", "H", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("Invoices exported",
		zap.Int("rows", len(invoices)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return buf.Bytes(), nil
}

package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	// StockSheet is the name of the only sheet in the stock workbook.
	StockSheet = "Stock"

	// XLSXContentType is the MIME type of the generated workbook.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var stockHeaders = []string{"Item ID", "Name", "SKU", "On Hand", "Unit"}

// WriteStockReport renders levels as a single-sheet workbook, one row per item
// in report order, and writes it to w.
func WriteStockReport(w io.Writer, levels []domain.StockLevel) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StockSheet); err != nil {
		return fmt.Errorf("failed to name stock sheet: %w", err)
	}

	for col, h := range stockHeaders {
		if err := setCell(f, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, l := range levels {
		row := i + 2
		values := []any{l.ItemID, l.Name, l.SKU, l.OnHand.InexactFloat64(), l.Unit}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write stock workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(StockSheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}

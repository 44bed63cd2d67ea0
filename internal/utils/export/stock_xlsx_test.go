package export_test

import (
	"bytes"
	"testing"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteStockReport(t *testing.T) {
	levels := []domain.StockLevel{
		{ItemID: "a", Name: "Hammer", SKU: "H-1", OnHand: decimal.RequireFromString("12"), Unit: "pcs"},
		{ItemID: "b", Name: "Wire", SKU: "W-9", OnHand: decimal.RequireFromString("-2.5"), Unit: "m"},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteStockReport(&buf, levels))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.StockSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Item ID", "Name", "SKU", "On Hand", "Unit"}, rows[0])
	assert.Equal(t, []string{"a", "Hammer", "H-1", "12", "pcs"}, rows[1])
	assert.Equal(t, []string{"b", "Wire", "W-9", "-2.5", "m"}, rows[2])
}

func TestWriteStockReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteStockReport(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.StockSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

package inventory_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/inventory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movement(itemID string, typ domain.MovementType, qty string) domain.StockMovement {
	return domain.StockMovement{ItemID: itemID, Type: typ, Qty: dec(qty), Reason: domain.ReasonAdjust, Date: time.Now()}
}

func TestComputeStockReport_Conservation(t *testing.T) {
	tests := []struct {
		name      string
		opening   string
		movements []domain.StockMovement
		want      string
	}{
		{name: "no movements", opening: "10", want: "10"},
		{name: "fractional opening rounds", opening: "3.14159", want: "3.14"},
		{name: "in and out", opening: "10", movements: []domain.StockMovement{
			movement("A", domain.MovementIn, "5"),
			movement("A", domain.MovementOut, "3"),
		}, want: "12"},
		{name: "fractional kg", opening: "1.5", movements: []domain.StockMovement{
			movement("A", domain.MovementIn, "0.255"),
			movement("A", domain.MovementOut, "0.1"),
		}, want: "1.66"},
		{name: "negative allowed", opening: "0", movements: []domain.StockMovement{
			movement("A", domain.MovementOut, "100"),
		}, want: "-100"},
		{name: "unknown type ignored", opening: "4", movements: []domain.StockMovement{
			movement("A", "transfer", "50"),
			movement("A", domain.MovementIn, "1"),
		}, want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []domain.Item{{ItemID: "A", Name: "Nails", SKU: "N-1", Unit: "kg", OpeningStock: dec(tt.opening)}}
			report := inventory.ComputeStockReport(items, tt.movements)
			require.Len(t, report.Levels, 1)
			assert.True(t, dec(tt.want).Equal(report.Levels[0].OnHand), "want %s got %s", tt.want, report.Levels[0].OnHand)
			assert.Equal(t, "kg", report.Levels[0].Unit)
		})
	}
}

func TestComputeStockReport_OrderAndOrphans(t *testing.T) {
	a, b, ghost := uuid.NewString(), uuid.NewString(), uuid.NewString()
	items := []domain.Item{
		{ItemID: b, Name: "Bolt", SKU: "B", OpeningStock: dec("1")},
		{ItemID: a, Name: "Anchor", SKU: "A", Unit: "box", OpeningStock: dec("2")},
	}
	movements := []domain.StockMovement{
		movement(ghost, domain.MovementIn, "7"),
		movement(a, domain.MovementIn, "3"),
		movement(ghost, domain.MovementOut, "2"),
		movement("", domain.MovementIn, "99"),
	}

	report := inventory.ComputeStockReport(items, movements)

	require.Len(t, report.Levels, 2)
	assert.Equal(t, b, report.Levels[0].ItemID)
	assert.Equal(t, domain.DefaultUnit, report.Levels[0].Unit)
	assert.Equal(t, a, report.Levels[1].ItemID)
	assert.True(t, dec("5").Equal(report.Levels[1].OnHand))
	require.Contains(t, report.Orphans, ghost)
	assert.True(t, dec("5").Equal(report.Orphans[ghost]))
	assert.Len(t, report.Orphans, 1)
}

func TestComputeStockReport_Idempotent(t *testing.T) {
	a := uuid.NewString()
	items := []domain.Item{{ItemID: a, Name: "Pipe", SKU: "P", OpeningStock: dec("10")}}
	movements := []domain.StockMovement{movement(a, domain.MovementOut, "2.5")}

	first := inventory.ComputeStockReport(items, movements)
	second := inventory.ComputeStockReport(items, movements)

	assert.Equal(t, first, second)
	assert.True(t, dec("10").Equal(items[0].OpeningStock), "inputs must not be mutated")
}

func TestComputeStockReport_Empty(t *testing.T) {
	report := inventory.ComputeStockReport(nil, nil)
	assert.NotNil(t, report.Levels)
	assert.Empty(t, report.Levels)
	assert.Empty(t, report.Orphans)
}

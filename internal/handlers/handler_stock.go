package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/middleware"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/export"
	"github.com/gin-gonic/gin"
)

type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func registerStockRoutes(r gin.IRoutes, stockService portssvc.StockSvcFacade) {
	h := &stockHandler{stockService: stockService}
	r.GET("/stock", h.getStock)
	r.GET("/stock/movements", h.listMovements)
	r.GET("/stock/export", h.exportStock)
}

// getStock godoc
// @Summary Current stock report
// @Description on_hand = opening stock + stock in - stock out, rounded to 2 places, in item order. May be negative.
// @Tags stock
// @Produce json
// @Success 200 {array} dto.StockLevelResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /stock [get]
func (h *stockHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.stockService.StockReport(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute stock report")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockLevelResponses(report.Levels))
}

// listMovements godoc
// @Summary List stock movements
// @Description Pages through the movement ledger in recording order.
// @Tags stock
// @Produce json
// @Param item_id query string false "Only movements for this item"
// @Param limit query int false "Page size (1-200, default 50)"
// @Param next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /stock/movements [get]
func (h *stockHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query for ListMovements")
		return
	}

	movements, next, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list stock movements")
		return
	}
	c.JSON(http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: next,
	})
}

// exportStock godoc
// @Summary Download the stock report
// @Tags stock
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/export [get]
func (h *stockHandler) exportStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var buf bytes.Buffer
	if err := h.stockService.ExportStockReport(c.Request.Context(), &buf); err != nil {
		respondError(c, logger, err, "Failed to export stock report")
		return
	}

	filename := fmt.Sprintf("stock-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

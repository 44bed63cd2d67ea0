package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests related to catalog items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func registerItemRoutes(reads, writes gin.IRoutes, itemService portssvc.ItemSvcFacade) {
	h := &itemHandler{itemService: itemService}
	writes.POST("/items", h.createItem)
	reads.GET("/items", h.listItems)
}

// createItem godoc
// @Summary Create an item
// @Description Adds an item to the catalog. SKU must be unique.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or SKU already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create item"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for CreateItem")
		return
	}

	logger.Info("Received request to create item", slog.String("sku", req.SKU))
	item, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create item")
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: item.ItemID})
}

// listItems godoc
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list items"
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponses(items))
}

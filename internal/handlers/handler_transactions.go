package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func registerPurchaseRoutes(reads, writes gin.IRoutes, purchaseService portssvc.PurchaseSvcFacade) {
	h := &purchaseHandler{purchaseService: purchaseService}
	writes.POST("/purchases", h.createPurchase)
	reads.GET("/purchases", h.listPurchases)
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Stores the vendor bill and one stock-in movement per line, atomically.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or malformed id"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for CreatePurchase")
		return
	}

	logger.Info("Received request to create purchase", slog.String("vendor_id", req.VendorID), slog.Int("lines", len(req.Items)))
	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create purchase")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: purchase.PurchaseID})
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Success 200 {array} dto.PurchaseResponse
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchases, err := h.purchaseService.ListPurchases(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponses(purchases))
}

type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func registerSaleRoutes(reads, writes gin.IRoutes, saleService portssvc.SaleSvcFacade) {
	h := &saleHandler{saleService: saleService}
	writes.POST("/sales", h.createSale)
	reads.GET("/sales", h.listSales)
}

// createSale godoc
// @Summary Record a sale
// @Description Stores the invoice and one stock-out movement per line, atomically. Stock may go negative.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or malformed id"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for CreateSale")
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create sale")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: sale.SaleID})
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func registerPaymentRoutes(reads, writes gin.IRoutes, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}
	writes.POST("/payments", h.createPayment)
	reads.GET("/payments", h.listPayments)
}

// createPayment godoc
// @Summary Record a payment
// @Description Records money against a purchase or sale. The referenced payment_status is not changed.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for CreatePayment")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create payment")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: payment.PaymentID})
}

// listPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

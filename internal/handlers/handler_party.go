package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler serves vendors and customers, which share one shape.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func registerPartyRoutes(reads, writes gin.IRoutes, partyService portssvc.PartySvcFacade) {
	h := &partyHandler{partyService: partyService}
	writes.POST("/vendors", h.createVendor)
	reads.GET("/vendors", h.listVendors)
	writes.POST("/customers", h.createCustomer)
	reads.GET("/customers", h.listCustomers)
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreatePartyRequest true "Vendor details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendors [post]
func (h *partyHandler) createVendor(c *gin.Context) {
	h.create(c, domain.PartyVendor, h.partyService.CreateVendor)
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Router /vendors [get]
func (h *partyHandler) listVendors(c *gin.Context) {
	h.list(c, domain.PartyVendor, h.partyService.ListVendors)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreatePartyRequest true "Customer details"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (h *partyHandler) createCustomer(c *gin.Context) {
	h.create(c, domain.PartyCustomer, h.partyService.CreateCustomer)
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Router /customers [get]
func (h *partyHandler) listCustomers(c *gin.Context) {
	h.list(c, domain.PartyCustomer, h.partyService.ListCustomers)
}

func (h *partyHandler) create(c *gin.Context, kind domain.PartyKind, create func(context.Context, dto.CreatePartyRequest) (*domain.Party, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(kind)))
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "JSON for create "+string(kind))
		return
	}

	party, err := create(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create "+string(kind))
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: party.PartyID})
}

func (h *partyHandler) list(c *gin.Context, kind domain.PartyKind, list func(context.Context) ([]domain.Party, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parties, err := list(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list "+string(kind)+"s")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
}
